package main

import (
	"flag"
	"log"
	"path"
	"strings"

	"go.uber.org/zap"

	"coursetable/internal/csvio"
	"coursetable/internal/model"
	"coursetable/pkg/config"
	"coursetable/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	// Define arguments
	dataDirPtr := flag.String("data", cfg.IO.DataDir, "Directory containing the input CSV tables")
	inputPtr := flag.String("input", cfg.IO.InputFile, "Path to a single JSON input file; overrides the CSV directory when set")
	outPtr := flag.String("out", cfg.IO.SolutionFile, "Path to the solution CSV")
	failuresPtr := flag.String("failures", cfg.IO.FailuresFile, "Path to the failure-report CSV")
	flag.Parse()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Extract input
	var tables model.Tables
	if input := *inputPtr; input != "" && strings.EqualFold(path.Ext(input), ".json") {
		tables, err = model.TablesFromJSON(input)
	} else {
		tables, err = csvio.LoadTables(*dataDirPtr)
	}
	if err != nil {
		zlog.Fatal("cannot load input tables", zap.Error(err))
	}

	dataset := tables.Build(zlog)
	zlog.Info("input normalized",
		zap.Int("courses", len(dataset.Courses)),
		zap.Int("instructors", len(dataset.Instructors)),
		zap.Int("rooms", len(dataset.Rooms)),
		zap.Int("timeSlots", len(dataset.TimeSlots)),
		zap.Int("sections", len(dataset.Sections)),
		zap.Int("sessions", len(dataset.Sessions)))

	// Build timetable
	overlap := model.BuildOverlapIndex(dataset.TimeSlots)
	sessions, domains := model.NewDomainBuilder(cfg.Solver, dataset, zlog).BuildAll(dataset.Sessions)
	scheduler := model.NewScheduler(overlap, dataset.Rooms, zlog)
	result := scheduler.Solve(sessions, domains)

	// Verify timetable correctness
	if !scheduler.Verify(result) {
		zlog.Fatal("committed timetable failed verification")
	}

	if err := csvio.ExportSolution(result, dataset, *outPtr); err != nil {
		zlog.Fatal("cannot write solution", zap.Error(err))
	}
	if failures := result.Failures(); len(failures) > 0 {
		if err := csvio.ExportFailures(result, *failuresPtr); err != nil {
			zlog.Fatal("cannot write failure report", zap.Error(err))
		}
		zlog.Warn("some sessions could not be placed",
			zap.Int("failed", len(failures)),
			zap.String("report", *failuresPtr))
	}

	zlog.Info("timetable written",
		zap.Int("assigned", len(result.Assignments())),
		zap.Int("failed", len(result.Failures())),
		zap.String("solution", *outPtr))
}
