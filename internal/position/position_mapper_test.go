package position_test

import (
	"errors"
	"testing"

	"github.com/aixxiteru/peta-jabatan/internal/position"
	positionerrors "github.com/aixxiteru/peta-jabatan/internal/position/errors"

	"github.com/stretchr/testify/assert"
)

func TestMapPositions(t *testing.T) {
	t.Run("resolved headers", func(t *testing.T) {
		csv := "Jenis Jabatan,Nama Jabatan,Kelas,Unit Kerja,Real Time,Kebutuhan (K),Periode Update\n" +
			`JABATAN FUNGSIONAL,ANALIS KEBIJAKAN AHLI MUDA,9,Sekretariat,"1.200",15,01/03/2024` + "\n" +
			"PENGAWAS,KEPALA SUBBAGIAN,9,,1,1,\n"

		got, err := position.MapPositions(csv)

		assert.NoError(t, err)
		assert.Len(t, got, 2)

		first := got[0]
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, "JABATAN FUNGSIONAL", first.JenisJabatan)
		assert.Equal(t, 9, first.KelasJabatan)
		assert.Equal(t, 1200, first.Ketersediaan)
		assert.Equal(t, 15, first.Kebutuhan)
		assert.Equal(t, 15, first.JumlahABK)
		assert.Equal(t, "Sekretariat", first.UnitKerja)
		assert.Equal(t, "01/03/2024", first.PeriodeUpdate)
		assert.Equal(t, position.StatusLebih, first.Status)
		assert.Equal(t, "Sesuai Standar", first.Pendidikan)
		assert.Equal(t, "Semua Jurusan", first.Jurusan)

		second := got[1]
		assert.Equal(t, "TIDAK TERIDENTIFIKASI", second.UnitKerja)
		assert.Equal(t, "-", second.PeriodeUpdate)
		assert.Equal(t, position.StatusSesuai, second.Status)
	})

	t.Run("real time column feeds ketersediaan", func(t *testing.T) {
		csv := "Jenis,Jabatan,Grade,X,Real Time,Kebutuhan (K)\n" +
			"STRUKTURAL,Kepala Bagian,9,-,5,5\n"

		got, err := position.MapPositions(csv)

		assert.NoError(t, err)
		if assert.Len(t, got, 1) {
			assert.Equal(t, position.JobPosition{
				ID:            1,
				JenisJabatan:  "STRUKTURAL",
				Jabatan:       "Kepala Bagian",
				KelasJabatan:  9,
				Pendidikan:    position.DefaultPendidikan,
				Jurusan:       position.DefaultJurusan,
				JumlahABK:     5,
				Ketersediaan:  5,
				Kebutuhan:     5,
				UnitKerja:     position.DefaultUnitKerja,
				PeriodeUpdate: position.NoPeriod,
				Status:        position.StatusSesuai,
			}, got[0])
		}
	})

	t.Run("positional fallback and dropped rows keep ids", func(t *testing.T) {
		csv := "a,b,c,d,e,f\n" +
			"PELAKSANA,-,5,x,3,4\n" +
			"PELAKSANA,PENGADMINISTRASI UMUM,5,x,3,4\n"

		got, err := position.MapPositions(csv)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 3, got[0].Ketersediaan)
		assert.Equal(t, 4, got[0].Kebutuhan)
		assert.Equal(t, position.StatusKurang, got[0].Status)
	})

	t.Run("diff column wins over derived status", func(t *testing.T) {
		csv := "jenis,jabatan,grade,unit,b,k,selisih\n" +
			"PELAKSANA,OPERATOR,5,x,3,4,2\n"

		got, err := position.MapPositions(csv)

		assert.NoError(t, err)
		assert.Equal(t, position.StatusLebih, got[0].Status)
	})

	t.Run("short rows default missing cells", func(t *testing.T) {
		got, err := position.MapPositions("jenis,jabatan\nSTRUKTURAL,KEPALA\n")

		assert.NoError(t, err)
		assert.Equal(t, 0, got[0].Ketersediaan)
		assert.Equal(t, 0, got[0].Kebutuhan)
		assert.Equal(t, position.StatusSesuai, got[0].Status)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := position.MapPositions("jenis,jabatan\n\n")
		assert.True(t, errors.Is(err, positionerrors.ErrEmptySheet))
	})

	t.Run("no usable rows", func(t *testing.T) {
		_, err := position.MapPositions("jenis,jabatan\nX,-\nY,\n")
		assert.True(t, errors.Is(err, positionerrors.ErrNoPositions))
	})

	t.Run("idempotent", func(t *testing.T) {
		csv := "jenis,jabatan,grade,unit,b,k\nPELAKSANA,OPERATOR,5,x,3,4\n"
		a, _ := position.MapPositions(csv)
		b, _ := position.MapPositions(csv)
		assert.Equal(t, a, b)
	})
}

func TestSamplePositions(t *testing.T) {
	sample := position.SamplePositions()

	assert.Len(t, sample, 10)
	assert.Equal(t, position.StatusKurang, sample[5].Status)
	assert.Equal(t, position.StatusLebih, sample[9].Status)

	sample[0].Jabatan = "changed"
	assert.NotEqual(t, "changed", position.SamplePositions()[0].Jabatan)
}
