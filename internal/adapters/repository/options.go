package repository

// Format names a dataset encoding.
type Format string

// Supported formats.
const (
	FormatAuto   Format = ""
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Option applies a configuration option to a load.
type Option func(*loadOptions)

type loadOptions struct {
	format Format
	table  string
}

func defaultLoadOptions() loadOptions {
	return loadOptions{format: FormatAuto, table: defaultTable}
}

// WithFormat forces the dataset format instead of inferring it from the path.
func WithFormat(f Format) Option {
	return func(o *loadOptions) {
		o.format = f
	}
}

// WithTable sets the SQLite table holding the results.
func WithTable(table string) Option {
	return func(o *loadOptions) {
		if table != "" {
			o.table = table
		}
	}
}
