package position

var samplePositions = []JobPosition{
	{ID: 1, JenisJabatan: "JPT PRATAMA", Jabatan: "KEPALA BADAN STANDARDISASI DAN KEBIJAKAN JASA INDUSTRI", KelasJabatan: 16,
		Pendidikan: "S-2 / S-3", Jurusan: "Teknik / Manajemen / Kebijakan Publik", JumlahABK: 1, Ketersediaan: 1, Kebutuhan: 1},
	{ID: 2, JenisJabatan: "ADMINISTRATOR", Jabatan: "SEKRETARIS BADAN STANDARDISASI DAN KEBIJAKAN JASA INDUSTRI", KelasJabatan: 12,
		Pendidikan: "S-1 / S-2", Jurusan: "Semua Jurusan", JumlahABK: 1, Ketersediaan: 1, Kebutuhan: 1},
	{ID: 3, JenisJabatan: "PENGAWAS", Jabatan: "KEPALA SUBBAGIAN PERENCANAAN", KelasJabatan: 9,
		Pendidikan: "S-1 Ekonomi / Akuntansi", Jurusan: "Ekonomi / Manajemen", JumlahABK: 1, Ketersediaan: 1, Kebutuhan: 1},
	{ID: 4, JenisJabatan: "PENGAWAS", Jabatan: "KEPALA SUBBAGIAN KEUANGAN DAN ASET", KelasJabatan: 9,
		Pendidikan: "S-1 Akuntansi", Jurusan: "Akuntansi", JumlahABK: 1, Ketersediaan: 1, Kebutuhan: 1},
	{ID: 5, JenisJabatan: "PENGAWAS", Jabatan: "KEPALA SUBBAGIAN UMUM DAN KEPEGAWAIAN", KelasJabatan: 9,
		Pendidikan: "S-1 Hukum / Sosial", Jurusan: "Hukum / Administrasi Negara", JumlahABK: 1, Ketersediaan: 1, Kebutuhan: 1},
	{ID: 6, JenisJabatan: "JABATAN FUNGSIONAL", Jabatan: "ANALIS KEBIJAKAN AHLI MADYA", KelasJabatan: 12,
		Pendidikan: "S-1/ Sarjana, S-2", Jurusan: "Semua Jurusan", JumlahABK: 10, Ketersediaan: 8, Kebutuhan: 10},
	{ID: 7, JenisJabatan: "JABATAN FUNGSIONAL", Jabatan: "ANALIS KEBIJAKAN AHLI MUDA", KelasJabatan: 9,
		Pendidikan: "S-1/ Sarjana", Jurusan: "Semua Jurusan", JumlahABK: 15, Ketersediaan: 12, Kebutuhan: 15},
	{ID: 8, JenisJabatan: "JABATAN FUNGSIONAL", Jabatan: "PERENCANA AHLI MUDA", KelasJabatan: 9,
		Pendidikan: "S-1 Ekonomi / Teknik / Manajemen", Jurusan: "Perencanaan / Ekonomi Pembangunan", JumlahABK: 4, Ketersediaan: 2, Kebutuhan: 4},
	{ID: 9, JenisJabatan: "JABATAN FUNGSIONAL", Jabatan: "ANALIS SUMBER DAYA MANUSIA APARATUR AHLI MUDA", KelasJabatan: 9,
		Pendidikan: "S-1 Hukum / Psikologi", Jurusan: "Manajemen SDM", JumlahABK: 2, Ketersediaan: 2, Kebutuhan: 2},
	{ID: 10, JenisJabatan: "JABATAN PELAKSANA", Jabatan: "PENGADMINISTRASI UMUM", KelasJabatan: 5,
		Pendidikan: "SLTA / Sederajat", Jurusan: "Semua Jurusan", JumlahABK: 10, Ketersediaan: 12, Kebutuhan: 10},
}

// SamplePositions returns a fresh copy of the built-in dataset. The sample
// carries no unit or period, so it lives in the undated period.
func SamplePositions() []JobPosition {
	out := make([]JobPosition, len(samplePositions))
	for i, p := range samplePositions {
		p.UnitKerja = DefaultUnitKerja
		p.PeriodeUpdate = NoPeriod
		p.Status = StatusFromDiff(p.Ketersediaan - p.Kebutuhan)
		out[i] = p
	}
	return out
}
