package errutil

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const delimiter = "; "

// Check the supplied error, log and exit if non-nil.
func Check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Fatalf("%v", err)
	}
}

// CheckWithContext checks the error and exit if it is not nil. Logs additional context information.
func CheckWithContext(err error, context string) {
	if err != nil {
		logrus.Debugf("%s: %+v", context, err)
		logrus.Fatalf("%s: %v", context, err)
	}
}

// Collection gathers errors of independent steps, e.g. validation of every command line value,
// so all of them can be reported at once.
type Collection struct {
	errs []error
}

// Add appends error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Len returns number of gathered errors.
func (c *Collection) Len() int {
	return len(c.errs)
}

// ErrorOrNil returns error with messages of all gathered errors or nil when there were none.
// A single error is returned as is.
func (c *Collection) ErrorOrNil() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	}

	messages := make([]string, len(c.errs))
	for i, err := range c.errs {
		messages[i] = err.Error()
	}
	return errors.New(strings.Join(messages, delimiter))
}
