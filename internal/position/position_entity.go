package position

type Status string

const (
	StatusSesuai Status = "SESUAI"
	StatusKurang Status = "KURANG"
	StatusLebih  Status = "LEBIH"
)

// StatusFromDiff maps a signed selisih (B - K) to a staffing status.
func StatusFromDiff(diff int) Status {
	switch {
	case diff == 0:
		return StatusSesuai
	case diff < 0:
		return StatusKurang
	default:
		return StatusLebih
	}
}

type DataSource string

const (
	SourceLocal  DataSource = "local"
	SourceSynced DataSource = "synced"
)

const (
	DefaultUnitKerja  = "TIDAK TERIDENTIFIKASI"
	DefaultPendidikan = "Sesuai Standar"
	DefaultJurusan    = "Semua Jurusan"
	NoPeriod          = "-"
)

// JobPosition is one row of the job map. ID is the 1-based data row
// number, counted before empty rows are dropped.
type JobPosition struct {
	ID            int    `json:"id"`
	JenisJabatan  string `json:"jenisJabatan"`
	Jabatan       string `json:"jabatan"`
	KelasJabatan  int    `json:"kelasJabatan"`
	Pendidikan    string `json:"pendidikan"`
	Jurusan       string `json:"jurusan"`
	JumlahABK     int    `json:"jumlahABK"`
	Ketersediaan  int    `json:"ketersediaan"`
	Kebutuhan     int    `json:"kebutuhan"`
	UnitKerja     string `json:"unitKerja"`
	PeriodeUpdate string `json:"periodeUpdate"`
	Status        Status `json:"status"`
}

// Dataset is what the job table and dashboard read. Positions fall back to
// the built-in sample when nothing usable has been synced.
type Dataset struct {
	Positions      []JobPosition `json:"positions"`
	Source         DataSource    `json:"source"`
	ParseError     string        `json:"parseError,omitempty"`
	LastManualSync string        `json:"lastManualSync,omitempty"`
}
