package types

import (
	"fmt"
	"io"
)

// Experiment runs an agent configuration and checks the properties on every episode
type Experiment[S State, A Action, O Observation, AA AgentAction] struct {
	config          *AgentConfig[S, A, O, AA]
	Name            string
	Result          []*Trace[S, A]
	Properties      []*Monitor[S, A]
	PropertiesStats []int
}

func NewExperiment[S State, A Action, O Observation, AA AgentAction](name string, config *AgentConfig[S, A, O, AA]) *Experiment[S, A, O, AA] {
	return &Experiment[S, A, O, AA]{
		config:          config,
		Name:            name,
		Result:          make([]*Trace[S, A], 0),
		Properties:      make([]*Monitor[S, A], 0),
		PropertiesStats: make([]int, 0),
	}
}

func NewExperimentWithProperties[S State, A Action, O Observation, AA AgentAction](name string, config *AgentConfig[S, A, O, AA], properties []*Monitor[S, A]) *Experiment[S, A, O, AA] {
	e := NewExperiment(name, config)
	e.Properties = properties
	e.PropertiesStats = make([]int, len(properties))
	return e
}

func (e *Experiment[S, A, O, AA]) hasProperties() bool {
	return len(e.Properties) != 0
}

// Run all the episodes of the experiment, printing the progress to out
func (e *Experiment[S, A, O, AA]) Run(out io.Writer) error {
	fmt.Fprintf(out, "Running Experiment: %s\n", e.Name)
	agent := NewAgent(e.config)
	e.Result = make([]*Trace[S, A], 0, e.config.Episodes)
	for i := 0; i < e.config.Episodes; i++ {
		fmt.Fprintf(out, "\rExperiment: %s, Episode: %d/%d", e.Name, i+1, e.config.Episodes)
		episode, err := agent.RunEpisode()
		if err != nil {
			fmt.Fprintln(out, "")
			return fmt.Errorf("experiment %s, episode %d: %w", e.Name, i, err)
		}
		e.Result = append(e.Result, episode.Trace)
		for j, prop := range e.Properties {
			if _, ok := prop.Check(episode.Trace); ok {
				e.PropertiesStats[j] += 1
			}
		}
	}
	fmt.Fprintln(out, "")
	if e.hasProperties() {
		for i, count := range e.PropertiesStats {
			fmt.Fprintf(out, "Property %d satisfied in %d episodes\n", i+1, count)
		}
	}
	return nil
}

type DataSet interface{}

// Analyzer summarizes the traces of an experiment, the first argument is the experiment name
type Analyzer[S State, A Action] func(string, []*Trace[S, A]) DataSet

// Comparator compares the datasets of the experiments, indexed by experiment names
type Comparator func([]string, []DataSet) error

type Comparison[S State, A Action, O Observation, AA AgentAction] struct {
	Experiments []*Experiment[S, A, O, AA]
	analyzer    Analyzer[S, A]
	comparator  Comparator
}

func NewComparison[S State, A Action, O Observation, AA AgentAction](analyzer Analyzer[S, A], comparator Comparator) *Comparison[S, A, O, AA] {
	return &Comparison[S, A, O, AA]{
		Experiments: make([]*Experiment[S, A, O, AA], 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison[S, A, O, AA]) AddExperiment(e *Experiment[S, A, O, AA]) {
	c.Experiments = append(c.Experiments, e)
}

// Run every experiment in order, then analyze and compare the results
func (c *Comparison[S, A, O, AA]) Run(out io.Writer) error {
	datasets := make([]DataSet, len(c.Experiments))
	names := make([]string, len(c.Experiments))
	for i, e := range c.Experiments {
		if err := e.Run(out); err != nil {
			return err
		}
		datasets[i] = c.analyzer(e.Name, e.Result)
		names[i] = e.Name
	}
	return c.comparator(names, datasets)
}

// Analyzers combines several analyzers, the resulting dataset is a []DataSet in the same order
func Analyzers[S State, A Action](analyzers ...Analyzer[S, A]) Analyzer[S, A] {
	return func(name string, traces []*Trace[S, A]) DataSet {
		ds := make([]DataSet, len(analyzers))
		for i, a := range analyzers {
			ds[i] = a(name, traces)
		}
		return ds
	}
}

// Comparators is the counterpart of Analyzers, comparator i receives the datasets of analyzer i
func Comparators(comparators ...Comparator) Comparator {
	return func(names []string, datasets []DataSet) error {
		for i, c := range comparators {
			split := make([]DataSet, len(datasets))
			for j, d := range datasets {
				split[j] = d.([]DataSet)[i]
			}
			if err := c(names, split); err != nil {
				return err
			}
		}
		return nil
	}
}
