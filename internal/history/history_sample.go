package history

// SampleHistory is shown when no history sheet is configured or it cannot
// be loaded.
func SampleHistory() []HistoryRow {
	return []HistoryRow{
		{
			ID:         1,
			Nama:       "Budi Santoso, S.T.",
			NIP:        "19850101 201001 1 001",
			Jabatan:    "Analisis Kebijakan Ahli Muda",
			UnitKerja:  "BSKJI",
			Status:     StatusPromosi,
			B:          0,
			Tanggal:    "2023-11-01",
			Keterangan: "Promosi Jabatan",
			SK:         "-",
		},
	}
}
