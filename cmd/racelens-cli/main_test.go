package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	app "github.com/okian/racelens/internal/app"
	"github.com/okian/racelens/pkg/logger"
)

func init() {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
}

const dataset = `[
  {"nombre": "José Pérez", "categoria": "30 A 39", "sexo": "Masculino", "posicion": 1, "posicionCategoria": 1, "tiempo": 0.025, "puntaje": 100},
  {"nombre": "Martín López", "categoria": "30 a 39", "sexo": "Masculino", "posicion": 2, "posicionCategoria": 2, "tiempo": 0.0275, "puntaje": 95},
  {"nombre": "Ana Gómez", "categoria": "40 a 49", "sexo": "Femenino", "posicion": 3, "posicionCategoria": 1, "tiempo": 0.03, "puntaje": 90}
]`

func writeDataset(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	Convey("Given a results dataset", t, func() {
		path := writeDataset(t, dataset)

		Convey("search folds accents", func() {
			out, err := run("--data", path, "search", "jose")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "José Pérez")
		})

		Convey("analyze shows the gap to the runner ahead", func() {
			out, err := run("--data", path, "analyze", "2", "--seed", "7")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Martín López · 30 a 39")
			So(out, ShouldContainSubstring, "Estuviste a 216 segundos")
		})

		Convey("analyze rejects a malformed position", func() {
			_, err := run("--data", path, "analyze", "first")
			So(err, ShouldNotBeNil)
		})

		Convey("podiums group by normalized category", func() {
			out, err := run("--data", path, "podiums")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "30 a 39 · Masculino (2)")
			So(out, ShouldContainSubstring, "40 a 49 · Femenino (1)")
		})

		Convey("results apply filters", func() {
			out, err := run("--data", path, "results", "--gender", "Femenino")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "1 corredores")
			So(out, ShouldContainSubstring, "Ana Gómez")
		})

		Convey("check passes a clean dataset", func() {
			out, err := run("--data", path, "check")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Dataset OK.")
		})

		Convey("convert writes a SQLite copy that loads back", func() {
			db := filepath.Join(t.TempDir(), "results.db")
			out, err := run("--data", path, "convert", db)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "wrote 3 runners")

			out, err = run("--data", db, "search", "ana")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Ana Gómez")
		})
	})

	Convey("Given a dataset with a gap in the overall positions", t, func() {
		path := writeDataset(t, `[
  {"nombre": "A", "categoria": "30 a 39", "sexo": "Masculino", "posicion": 1, "posicionCategoria": 1, "tiempo": 0.025, "puntaje": 100},
  {"nombre": "B", "categoria": "30 a 39", "sexo": "Masculino", "posicion": 3, "posicionCategoria": 2, "tiempo": 0.03, "puntaje": 90}
]`)

		Convey("check reports it and fails", func() {
			out, err := run("--data", path, "check")
			So(errors.Is(err, errViolations), ShouldBeTrue)
			So(out, ShouldContainSubstring, "overall_positions")
		})
	})
}

// setenv sets key for the rest of the enclosing Convey block.
func setenv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatal(err)
	}
	Reset(func() { _ = os.Unsetenv(key) })
}

func TestCLI_EnvironmentConfig(t *testing.T) {
	t.Setenv("RACELENS_CONFIG", "")

	Convey("Given RACELENS_DATA_PATH names the dataset", t, func() {
		path := writeDataset(t, dataset)
		setenv(t, "RACELENS_DATA_PATH", path)

		Convey("convert reads it without --data", func() {
			db := filepath.Join(t.TempDir(), "results.db")
			out, err := run("convert", db)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "wrote 3 runners")

			out, err = run("--data", db, "search", "martin")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Martín López")
		})

		Convey("an explicit --data wins over the environment", func() {
			db := filepath.Join(t.TempDir(), "results.db")
			_, err := run("--data", filepath.Join(t.TempDir(), "missing.json"), "convert", db)
			So(err, ShouldNotBeNil)
		})

		Convey("RACELENS_MOTIVATION_SEED stands in for --seed", func() {
			want, err := run("analyze", "2", "--seed", "7")
			So(err, ShouldBeNil)

			setenv(t, "RACELENS_MOTIVATION_SEED", "7")
			got, err := run("analyze", "2")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		})

		Convey("RACELENS_LOG_LEVEL is applied unless --log-level is set", func() {
			setenv(t, "RACELENS_LOG_LEVEL", "loud")
			_, err := run("podiums")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown log level")

			_, err = run("--log-level", "warn", "podiums")
			So(err, ShouldBeNil)
		})
	})

	Convey("Given RACELENS_STRICT_INTEGRITY and a dataset with a gap", t, func() {
		path := writeDataset(t, `[
  {"nombre": "A", "categoria": "30 a 39", "sexo": "Masculino", "posicion": 1, "posicionCategoria": 1, "tiempo": 0.025, "puntaje": 100},
  {"nombre": "B", "categoria": "30 a 39", "sexo": "Masculino", "posicion": 3, "posicionCategoria": 2, "tiempo": 0.03, "puntaje": 90}
]`)
		setenv(t, "RACELENS_STRICT_INTEGRITY", "true")

		Convey("queries refuse to start", func() {
			_, err := run("--data", path, "podiums")
			So(errors.Is(err, app.ErrIntegrity), ShouldBeTrue)
		})
	})
}
