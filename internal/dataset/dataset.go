// Package dataset carries the mutable data context a pipeline run threads
// through its steps: the dataset roots, the subject/session/task
// bookkeeping, and arbitrary values steps hand to their successors.
package dataset

import "flowline/internal/config"

// Record identifies one subject/session/task combination of the dataset.
type Record struct {
	Subject string
	Session string
	Task    string
}

// Context is the mutable object passed from step to step. It is not safe
// for concurrent use; the run model is strictly sequential.
type Context struct {
	DataRoot        string
	DerivativesRoot string

	Subjects []string
	Sessions []string
	Tasks    []string
	Datatype string

	values map[string]any
}

// NewContext builds a run context from configuration.
func NewContext(cfg *config.Config) *Context {
	return &Context{
		DataRoot:        cfg.Paths.DataRoot,
		DerivativesRoot: cfg.Paths.DerivativesRoot,
		Subjects:        append([]string(nil), cfg.Dataset.Subjects...),
		Sessions:        append([]string(nil), cfg.Dataset.Sessions...),
		Tasks:           append([]string(nil), cfg.Dataset.Tasks...),
		Datatype:        cfg.Dataset.Datatype,
		values:          make(map[string]any),
	}
}

// Put stores a value for downstream steps.
func (c *Context) Put(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Get retrieves a value stored by an earlier step.
func (c *Context) Get(key string) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

// Records enumerates every subject/session/task combination. Empty axes
// contribute a single blank entity, so a dataset with no sessions still
// yields one record per subject and task.
func (c *Context) Records() []Record {
	subjects := orBlank(c.Subjects)
	sessions := orBlank(c.Sessions)
	tasks := orBlank(c.Tasks)

	records := make([]Record, 0, len(subjects)*len(sessions)*len(tasks))
	for _, subject := range subjects {
		for _, session := range sessions {
			for _, task := range tasks {
				records = append(records, Record{Subject: subject, Session: session, Task: task})
			}
		}
	}
	return records
}

func orBlank(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return values
}
