package collect

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"finmetrics/pkg/core/units"
)

// Session drives an interactive data-collection dialogue over a reader and
// writer pair, so it can run against a terminal or a scripted buffer.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewSession wraps the given input and output streams.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Printf writes formatted output to the session's writer.
func (s *Session) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// ReadFloat prompts until a valid number is entered. Blank input defaults
// to 0, and thousands separators are stripped.
func (s *Session) ReadFloat(prompt string) (float64, error) {
	for {
		s.Printf("%s", prompt)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, nil
		}
		line = strings.ReplaceAll(line, ",", "")
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			s.Printf("Invalid input. Please enter a valid number (e.g., 1234.56) or leave blank for 0.\n")
			continue
		}
		return value, nil
	}
}

// ChooseUnit shows the unit reference table and a numbered menu, then
// prompts until a valid choice is made.
func (s *Session) ChooseUnit(prompt string) (units.Unit, error) {
	all := units.All()

	s.Printf("\n%s\n", prompt)
	s.Printf("\n  --- Unit Reference Table ---\n")
	s.Printf("  | %-12s | %-18s |\n", "Unit", "Number of Zeroes")
	s.Printf("  | :%s: | :%s: |\n", strings.Repeat("-", 10), strings.Repeat("-", 16))
	for _, u := range all {
		s.Printf("  | %-12s | %-18d |\n", u.Display(), u.Zeroes())
	}
	s.Printf("  ----------------------------------\n\n")

	s.Printf("Please choose one of the following units by entering its number:\n")
	for i, u := range all {
		s.Printf("  %d: %s\n", i+1, u.Display())
	}

	for {
		s.Printf("Your choice (1-%d): ", len(all))
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.Printf("Invalid input. Please enter a number.\n")
			continue
		}
		if choice < 1 || choice > len(all) {
			s.Printf("Invalid choice. Please enter a number between 1 and %d.\n", len(all))
			continue
		}
		return all[choice-1], nil
	}
}

// Confirm prompts until a yes/no answer is given.
func (s *Session) Confirm(prompt string) (bool, error) {
	for {
		s.Printf("%s", prompt)
		line, err := s.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		s.Printf("Invalid input. Please enter 'yes' or 'no'.\n")
	}
}

// Collect walks the field catalog, prompting for every figure, and returns
// the completed dataset in the given base unit. Blank answers record 0.
func (s *Session) Collect(baseUnit units.Unit) (*Dataset, error) {
	stmts, err := Statements()
	if err != nil {
		return nil, err
	}

	unitName := baseUnit.Display()
	s.Printf("\n--- Data Collection ---\n")
	s.Printf("Please enter all values in %s unless specified otherwise.\n", strings.ToUpper(unitName))
	s.Printf("Press ENTER to skip a field (it will be recorded as 0.0).\n")

	ds := NewDataset(baseUnit)
	for _, stmt := range stmts {
		s.Printf("\n--- %s ---\n", stmt.Title)
		for _, sec := range stmt.Sections {
			s.Printf("\n(%s)\n", sec.Title)
			for _, field := range sec.Fields {
				var prompt string
				if field.Absolute {
					prompt = fmt.Sprintf("  (-> %s) (in absolute numbers): ", field.Label)
				} else {
					prompt = fmt.Sprintf("  (-> %s) (in %s): ", field.Label, unitName)
				}
				value, err := s.ReadFloat(prompt)
				if err != nil {
					return nil, err
				}
				ds.Values[field.Key] = value
			}
		}
	}
	s.Printf("\n--- Data Collection Complete ---\n")
	return ds, nil
}

// Summarize prints the dataset's figures in catalog order, marking
// absolute fields.
func (s *Session) Summarize(ds *Dataset) error {
	fields, err := Fields()
	if err != nil {
		return err
	}
	unitName := strings.ToUpper(ds.Unit.Display())
	for _, field := range fields {
		value := ds.Values[field.Key]
		if field.Absolute {
			s.Printf("  %s: %.0f (Absolute Number)\n", field.Key, value)
		} else {
			s.Printf("  %s: %.2f (%s)\n", field.Key, value, unitName)
		}
	}
	return nil
}
