package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"schedge-fetch/internal/config"
	"schedge-fetch/internal/devutil"
	"schedge-fetch/internal/export"
	"schedge-fetch/internal/httpx"
	"schedge-fetch/internal/quacs"
	"schedge-fetch/internal/schedge"
	"schedge-fetch/internal/sftpclient"
)

type options struct {
	outPath  string // empty = derive from OutDir/Year/Term
	writeCSV bool
	upload   bool
}

func main() {
	cfg := config.Load()

	var (
		year    = flag.Int("year", cfg.Year, "academic year")
		term    = flag.String("term", cfg.Term, "term code (fa, sp, su)")
		school  = flag.String("school", cfg.School, "school code (e.g. EG)")
		subject = flag.String("subject", cfg.Subject, "subject code (e.g. CS)")
		outPath = flag.String("out", "", "output json path (default semester_data/{year}/{term}/courses.json)")
		csvOut  = flag.Bool("csv", false, "also write a flattened sections CSV next to the JSON")
		sftpUp  = flag.Bool("sftp", false, "upload the written JSON via SFTP")
	)
	flag.Parse()

	cfg.Year = *year
	cfg.Term = *term
	cfg.School = *school
	cfg.Subject = *subject

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, options{outPath: *outPath, writeCSV: *csvOut, upload: *sftpUp}); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, opts options) error {
	client := schedge.New(cfg.SchedgeBaseURL)

	// Connectivity sanity check only; a failure here is worth a warning
	// but must not stop the run.
	log.Println("fetching terms (sanity check)")
	if terms, err := client.Terms(ctx); err != nil {
		log.Printf("WARN: could not fetch terms from %s/v3/terms: %v", client.BaseURL, err)
	} else {
		log.Printf("schedge terms sample: %s", httpx.Snippet([]byte(fmt.Sprint(terms)), 200))
	}

	log.Printf("fetching %d %s %s %s", cfg.Year, cfg.Term, cfg.School, cfg.Subject)
	raw, err := client.Courses(ctx, cfg.Year, cfg.Term, cfg.School, cfg.Subject)
	if err != nil {
		return err
	}

	if len(raw) > 0 {
		log.Printf("first course: %v", devutil.Pick(raw[0], "subjectCode", "subject", "courseNumber", "name", "title"))
	}

	log.Printf("transforming %d courses", len(raw))
	doc := quacs.Transform(raw)

	outPath := opts.outPath
	if outPath == "" {
		outPath = filepath.Join(cfg.OutDir, strconv.Itoa(cfg.Year), cfg.Term, "courses.json")
	}

	if err := export.WriteCoursesJSONFile(outPath, doc); err != nil {
		return err
	}
	log.Printf("wrote %d courses to %s", len(doc.Courses), outPath)

	if opts.writeCSV {
		csvPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".csv"
		if err := export.WriteSectionsCSVFile(csvPath, doc); err != nil {
			return err
		}
		log.Printf("wrote sections csv to %s", csvPath)
	}

	if opts.upload {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 2*time.Minute)
		defer upCancel()

		remoteName := filepath.Base(outPath)
		if err := sftpclient.UploadFile(upCtx, upCfg, outPath, remoteName); err != nil {
			return err
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	}

	return nil
}
