package config

import (
	"os"
	"strconv"

	"schedge-fetch/internal/schedge"
)

// Config carries the run parameters. Defaults are the MVP slice (one
// school+subject, Fall 2025) so a bare run with no env set reproduces
// the baseline pipeline; expand to more schools/subjects after the MVP
// proves out.
type Config struct {
	// Schedge
	SchedgeBaseURL string

	// MVP slice
	Year    int
	Term    string // fa, sp, su
	School  string // "EG" = Tandon
	Subject string // e.g. "CS"

	// Output
	OutDir string // artifact lands at {OutDir}/{Year}/{Term}/courses.json

	// SFTP drop (only used with -sftp)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	return Config{
		SchedgeBaseURL: getenv("SCHEDGE_BASE_URL", schedge.DefaultBaseURL),

		Year:    getenvInt("SCHEDGE_YEAR", 2025),
		Term:    getenv("SCHEDGE_TERM", "fa"),
		School:  getenv("SCHEDGE_SCHOOL", "EG"),
		Subject: getenv("SCHEDGE_SUBJECT", "CS"),

		OutDir: getenv("SCHEDGE_OUT_DIR", "semester_data"),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: os.Getenv("SFTP_INSECURE_IGNORE_HOST_KEY") == "true",
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
