package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePS parses a paint shop problem and returns the corresponding Problem.
// The first line holds the number of colors; every following line holds the
// wishes of one customer, as whitespace-separated "<color> <letter>" pairs
// with 1-indexed colors and letters G (glossy) or M (matte).
// A line holding no pair at all describes a customer that can never be
// satisfied, making the whole problem unsatisfiable.
func ParsePS(f io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "could not read colors line")
		}
		return nil, errors.New("empty problem: missing colors line")
	}
	line := strings.TrimSpace(scanner.Text())
	nbColors, err := strconv.Atoi(line)
	if err != nil {
		return nil, errors.Errorf("number of colors not an int: %q", line)
	}
	if nbColors < 0 {
		return nil, errors.Errorf("negative number of colors: %d", nbColors)
	}
	pb := &Problem{NbColors: nbColors}
	for scanner.Scan() {
		customer, err := parseCustomer(scanner.Text(), nbColors)
		if err != nil {
			return nil, errors.Wrapf(err, "customer %d", len(pb.Customers))
		}
		pb.Customers = append(pb.Customers, customer)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read problem")
	}
	return pb, nil
}

// parseCustomer parses one customer line made of "<color> <letter>" pairs.
func parseCustomer(line string, nbColors int) (Customer, error) {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of tokens in line %q", line)
	}
	customer := make(Customer, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		color, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, errors.Errorf("color not an int: %q", fields[i])
		}
		if color < 1 || color > nbColors {
			return nil, errors.Errorf("color %d out of range [1, %d]", color, nbColors)
		}
		var finish Finish
		switch fields[i+1] {
		case "G":
			finish = Glossy
		case "M":
			finish = Matte
		default:
			return nil, errors.Errorf("invalid finish %q: must be G or M", fields[i+1])
		}
		customer = append(customer, Wish{Color: color - 1, Finish: finish})
	}
	return customer, nil
}
