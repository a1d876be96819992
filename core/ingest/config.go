package ingest

// Config holds configuration for catalog ingestion.
type Config struct {
	// MaxReferenceRows bounds each reference snapshot loaded for a sheet.
	MaxReferenceRows int `mapstructure:"max_reference_rows" default:"100000"`
	// MaxFileMB bounds uploaded workbooks.
	MaxFileMB int `mapstructure:"max_file_mb" default:"10"`
	// Archive stores every uploaded workbook and its report in object storage.
	Archive bool `mapstructure:"archive" default:"false"`
	// ArchivePrefix is the object prefix archives are written under.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"imports"`
}

// MaxFileBytes returns the upload bound in bytes.
func (c Config) MaxFileBytes() int64 {
	if c.MaxFileMB <= 0 {
		return 10 << 20
	}
	return int64(c.MaxFileMB) << 20
}
