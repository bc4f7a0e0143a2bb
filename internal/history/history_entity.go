package history

import "strings"

type Status string

const (
	StatusMutasi  Status = "Mutasi"
	StatusPromosi Status = "Promosi"
	StatusCTLN    Status = "CTLN"
	StatusTubel   Status = "Tubel"
	StatusPensiun Status = "Pensiun"
)

var knownStatuses = []Status{StatusMutasi, StatusPromosi, StatusCTLN, StatusTubel, StatusPensiun}

// CanonicalStatus maps a sheet value onto a known status ignoring case.
// Unknown values are returned as they are.
func CanonicalStatus(raw string) Status {
	for _, s := range knownStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s
		}
	}
	return Status(raw)
}

type DataSource string

const (
	SourceLocal  DataSource = "local"
	SourceSynced DataSource = "synced"
)

// HistoryRow is one status change of one employee. B is the signed effect
// on the bezetting of the position.
type HistoryRow struct {
	ID         int    `json:"id"`
	Nama       string `json:"nama"`
	NIP        string `json:"nip"`
	Jabatan    string `json:"jabatan"`
	UnitKerja  string `json:"unitKerja"`
	Status     Status `json:"status"`
	B          int    `json:"b"`
	Tanggal    string `json:"tanggal"`
	Keterangan string `json:"keterangan"`
	SK         string `json:"sk"`
}

// Dataset is what a history load produced. FetchError is set when the sheet
// could not be loaded and Rows hold the sample instead.
type Dataset struct {
	Rows       []HistoryRow
	Source     DataSource
	FetchError string
}
