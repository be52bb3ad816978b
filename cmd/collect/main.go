package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"finmetrics/pkg/core/collect"
	"finmetrics/pkg/models"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Optional environment overrides (log level etc).
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}
	if level := os.Getenv("FINMETRICS_LOG_LEVEL"); level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			log.WithField("level", level).Warn("unknown log level, keeping default")
		} else {
			log.SetLevel(parsed)
		}
	}

	session := collect.NewSession(os.Stdin, os.Stdout)

	if err := run(session, log); err != nil {
		if errors.Is(err, io.EOF) {
			log.Info("input closed, exiting")
			os.Exit(0)
		}
		log.WithError(err).Fatal("collection failed")
	}
}

func run(s *collect.Session, log *logrus.Logger) error {
	s.Printf("======================================================\n")
	s.Printf("     Financial Statement Data Collection\n")
	s.Printf("======================================================\n")
	s.Printf("This tool will guide you to input raw data from your\n")
	s.Printf("financial statements (Balance Sheet, P&L, Cash Flow).\n")

	baseUnit, err := s.ChooseUnit("First, what is the primary unit used in your statements?")
	if err != nil {
		return err
	}

	ds, err := s.Collect(baseUnit)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"dataset": ds.ID,
		"unit":    ds.Unit,
		"fields":  len(ds.Values),
	}).Info("dataset collected")

	s.Printf("\n--- Collected Data Summary (in original units) ---\n")
	if err := s.Summarize(ds); err != nil {
		return err
	}

	stmts := models.StatementsFromDataset(ds)
	s.Printf("\n--- Derived Totals (%s) ---\n", strings.ToUpper(ds.Unit.Display()))
	s.Printf("  Total Assets:        %.2f\n", stmts.BalanceSheet.TotalAssets())
	s.Printf("  Total Equity:        %.2f\n", stmts.BalanceSheet.TotalEquity())
	s.Printf("  Working Capital:     %.2f\n", stmts.BalanceSheet.WorkingCapital())
	s.Printf("  EBITDA:              %.2f\n", stmts.ProfitLoss.EBITDA())
	s.Printf("  Operating Cash Flow: %.2f\n", stmts.CashFlow.NetOperatingCashFlow())

	s.Printf("\n--- Unit Conversion ---\n")
	wantConvert, err := s.Confirm("Would you like to convert this data to a different unit? (yes/no): ")
	if err != nil {
		return err
	}
	if !wantConvert {
		s.Printf("\nExiting. Have a great day!\n")
		return nil
	}

	targetUnit, err := s.ChooseUnit("What unit would you like to convert TO?")
	if err != nil {
		return err
	}
	if targetUnit == baseUnit {
		s.Printf("\nNo conversion needed. The data is already in %s.\n", strings.ToUpper(targetUnit.Display()))
		return nil
	}

	converted, err := ds.ConvertTo(targetUnit)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"dataset": converted.ID,
		"from":    baseUnit,
		"to":      targetUnit,
	}).Info("dataset converted")

	s.Printf("\n--- Converting data from %s to %s ---\n",
		strings.ToUpper(baseUnit.Display()), strings.ToUpper(targetUnit.Display()))
	if err := s.Summarize(converted); err != nil {
		return err
	}
	s.Printf("\n--- Conversion Complete ---\n")
	return nil
}
