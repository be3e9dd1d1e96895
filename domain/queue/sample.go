package queue

// SampleColumns is the header of the built-in sample queue
var SampleColumns = []string{
	"ref", "descricao", "solicitante", "cod_z", "aplicacao",
	"vagao", "conceito_p", "conceito_st", "conceito_ini", "conceito_fim",
}

const (
	sampleDescricao   = "SUPORTE PARA PAINEL ELETROELETRÔNICO SWD"
	sampleSolicitante = "VITOR RIBEIRO"
	sampleAplicacao   = "SOLID-JONATAN"
	sampleVagao       = "HTT"
)

// SampleTable returns the six-record queue served when no data file can be
// read. Every call builds a new table.
func SampleTable() *Table {
	rows := [][]Value{
		{"SL4415", sampleDescricao, sampleSolicitante, "Z3156", sampleAplicacao, sampleVagao, "PINTURA", "PENDENTE", "07.10.25", "08.10.25"},
		{"SL4416", sampleDescricao, sampleSolicitante, "Z3157", sampleAplicacao, sampleVagao, "PINTURA", "PENDENTE", "07.10.25", "08.10.25"},
		{"SL4417", sampleDescricao, sampleSolicitante, "Z3158", sampleAplicacao, sampleVagao, "PINTURA", "EM ANDAMENTO", "08.10.25", "09.10.25"},
		{"SL4418", sampleDescricao, sampleSolicitante, "Z3159", sampleAplicacao, sampleVagao, "SOLDAGEM", "CONCLUÍDO", "08.10.25", "10.10.25"},
		{"SL4419", sampleDescricao, sampleSolicitante, "Z3160", sampleAplicacao, sampleVagao, "PINTURA", "PENDENTE", "09.10.25", "10.10.25"},
		{"SL4420", sampleDescricao, sampleSolicitante, "Z3161", sampleAplicacao, sampleVagao, "SOLDAGEM", "EM ANDAMENTO", "09.10.25", "11.10.25"},
	}

	header := make([]string, len(SampleColumns))
	copy(header, SampleColumns)
	return NewTable(header, rows)
}
