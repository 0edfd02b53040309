package silver

import "time"

// Dataset names used in output keys. Never mix schemas under one prefix.
const (
	DatasetSorteos = "sorteos"
	DatasetPremios = "premios"
)

// SorteoRow is one row of the sorteos Silver table, exactly one per source
// file. numero_sorteo is the idempotency key.
type SorteoRow struct {
	NumeroSorteo           int64      `parquet:"numero_sorteo"`
	FechaSorteo            *time.Time `parquet:"fecha_sorteo,optional,timestamp(millisecond)"`
	FechaCaducidad         *time.Time `parquet:"fecha_caducidad,optional,timestamp(millisecond)"`
	PrimerPremio           *int64     `parquet:"primer_premio,optional"`
	SegundoPremio          *int64     `parquet:"segundo_premio,optional"`
	TercerPremio           *int64     `parquet:"tercer_premio,optional"`
	ReintegroPrimerPremio  *int64     `parquet:"reintegro_primer_premio,optional"`
	ReintegroSegundoPremio *int64     `parquet:"reintegro_segundo_premio,optional"`
	ReintegroTercerPremio  *int64     `parquet:"reintegro_tercer_premio,optional"`
}

// PremioRow is one row of the premios Silver table, one per winning-ticket
// line. numero_sorteo references the owning SorteoRow.
type PremioRow struct {
	NumeroSorteo   int64   `parquet:"numero_sorteo"`
	NumeroPremiado *int64  `parquet:"numero_premiado,optional"`
	Letras         *string `parquet:"letras,optional"`
	Monto          float64 `parquet:"monto"`
	Vendedor       *string `parquet:"vendedor,optional"`
	Ciudad         *string `parquet:"ciudad,optional"`
	Departamento   *string `parquet:"departamento,optional"`
}

// SchemaVersion identifies the Silver schema. Increment on breaking changes.
const SchemaVersion = "1.0.0"
