package csvsheet

// Field is a semantic column a sheet may carry.
type Field string

const (
	FieldJenis        Field = "jenis"
	FieldJabatan      Field = "jabatan"
	FieldGrade        Field = "grade"
	FieldUnit         Field = "unit"
	FieldKetersediaan Field = "ketersediaan"
	FieldKebutuhan    Field = "kebutuhan"
	FieldDiff         Field = "diff"
	FieldPeriode      Field = "periode"
	FieldNama         Field = "nama"
	FieldNIP          Field = "nip"
	FieldPangkat      Field = "pangkat"
	FieldStatus       Field = "status"
	FieldTanggal      Field = "tanggal"
	FieldKeterangan   Field = "keterangan"
	FieldSK           Field = "sk"
)

// Absent marks a field that no header column could be matched to.
const Absent = -1

// Tier is one matching round. A column matches when it equals one of Exact
// or contains one of Contains; the leftmost matching column wins.
type Tier struct {
	Exact    []string
	Contains []string
}

type FieldRule struct {
	Field    Field
	Tiers    []Tier
	Fallback int
}

// Schema describes how one sheet is tokenized and how its headers map to
// semantic fields.
type Schema struct {
	Name      string
	Tokenizer TokenizerOptions
	Rules     []FieldRule
}

func exact(candidates ...string) Tier {
	return Tier{Exact: candidates}
}

func contains(substrings ...string) Tier {
	return Tier{Contains: substrings}
}

// JobSheet is the "Peta Jabatan" main sheet. It keeps the legacy comma-only,
// lookahead-split tokenizer and falls back to fixed column positions.
var JobSheet = Schema{
	Name: "job",
	Tokenizer: TokenizerOptions{
		Delimiter: DelimiterComma,
		Split:     SplitLookahead,
	},
	Rules: []FieldRule{
		{Field: FieldJenis, Tiers: []Tier{exact("jenis", "jenis jabatan", "kategori")}, Fallback: 0},
		{Field: FieldJabatan, Tiers: []Tier{exact("jabatan", "nama jabatan", "nama")}, Fallback: 1},
		{Field: FieldGrade, Tiers: []Tier{exact("grade", "kelas", "kelas jabatan")}, Fallback: 2},
		{Field: FieldKetersediaan, Tiers: []Tier{
			exact("real time", "realtime"),
			exact("bezzeting (b)", "bezetting (b)", "b"),
		}, Fallback: 4},
		{Field: FieldKebutuhan, Tiers: []Tier{exact("kebutuhan (k)", "k")}, Fallback: 5},
		{Field: FieldDiff, Tiers: []Tier{exact("selisih", "+/-")}, Fallback: Absent},
		{Field: FieldUnit, Tiers: []Tier{exact("unit kerja", "unit", "satker")}, Fallback: Absent},
		{Field: FieldPeriode, Tiers: []Tier{exact("periode update", "periode", "update")}, Fallback: Absent},
	},
}

// EmployeeSheet is the "Data Pegawai" subsheet. Headers there are free-form,
// so matching is by substring.
var EmployeeSheet = Schema{
	Name: "employee",
	Tokenizer: TokenizerOptions{
		Delimiter: DelimiterAuto,
		Split:     SplitStateful,
	},
	Rules: []FieldRule{
		{Field: FieldNama, Tiers: []Tier{contains("nama")}, Fallback: Absent},
		{Field: FieldNIP, Tiers: []Tier{contains("nip")}, Fallback: Absent},
		{Field: FieldJabatan, Tiers: []Tier{{
			Exact:    []string{"nama_jabatan", "posisi"},
			Contains: []string{"jabatan"},
		}}, Fallback: Absent},
		{Field: FieldUnit, Tiers: []Tier{contains("unit", "satker", "kerja")}, Fallback: Absent},
		{Field: FieldPangkat, Tiers: []Tier{contains("pangkat", "gol", "ruang")}, Fallback: Absent},
	},
}

// HistorySheet is the employee status history sheet.
var HistorySheet = Schema{
	Name: "history",
	Tokenizer: TokenizerOptions{
		Delimiter: DelimiterAuto,
		Split:     SplitStateful,
	},
	Rules: []FieldRule{
		{Field: FieldNama, Tiers: []Tier{exact("nama", "nama pegawai"), contains("nama")}, Fallback: Absent},
		{Field: FieldNIP, Tiers: []Tier{exact("nip"), contains("nip")}, Fallback: Absent},
		{Field: FieldJabatan, Tiers: []Tier{exact("jabatan", "nama jabatan"), contains("jabatan")}, Fallback: Absent},
		{Field: FieldUnit, Tiers: []Tier{exact("unit kerja", "unit", "satker"), contains("unit", "satker")}, Fallback: Absent},
		{Field: FieldStatus, Tiers: []Tier{exact("status", "jenis mutasi"), contains("status")}, Fallback: Absent},
		{Field: FieldDiff, Tiers: []Tier{exact("b", "+/-", "bezetting", "bezzeting")}, Fallback: Absent},
		{Field: FieldTanggal, Tiers: []Tier{exact("tanggal", "tmt"), contains("tanggal", "tgl")}, Fallback: Absent},
		{Field: FieldKeterangan, Tiers: []Tier{exact("keterangan", "ket"), contains("keterangan")}, Fallback: Absent},
		{Field: FieldSK, Tiers: []Tier{exact("sk", "no sk", "no. sk", "nomor sk"), contains("nomor sk", "no sk", "no. sk")}, Fallback: Absent},
	},
}
