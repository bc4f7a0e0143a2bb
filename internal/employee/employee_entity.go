package employee

// Employee is one row of the "Data Pegawai" subsheet. Golongan is not read
// from the sheet and stays empty for synced rows.
type Employee struct {
	ID        int    `json:"id"`
	Nama      string `json:"nama"`
	NIP       string `json:"nip"`
	Jabatan   string `json:"jabatan"`
	UnitKerja string `json:"unitKerja"`
	Pangkat   string `json:"pangkat"`
	Golongan  string `json:"golongan"`
}
