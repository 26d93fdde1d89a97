package InputParameters

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ghodss/yaml"

	"github.com/gofvm/gofv/equation"
	"github.com/gofvm/gofv/sles"
)

// EquationSpec is the linear-solver block of one equation in the YAML
// case file. Zero values leave the corresponding default untouched.
type EquationSpec struct {
	Solver        string  `yaml:"Solver"`
	Precond       string  `yaml:"Precond"`
	SolverFamily  string  `yaml:"SolverFamily"`
	AMGType       string  `yaml:"AMGType"`
	MaxIterations int     `yaml:"MaxIterations"`
	Rtol          float64 `yaml:"Rtol"`
	Atol          float64 `yaml:"Atol"`
	Dtol          float64 `yaml:"Dtol"`
	Restart       int     `yaml:"Restart"`
	Verbosity     int     `yaml:"Verbosity"`
	ResNorm       string  `yaml:"ResNorm"`
}

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title     string                  `yaml:"Title"`
	Equations map[string]EquationSpec `yaml:"Equations"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	for _, name := range ip.EquationNames() {
		fmt.Printf("Equations[%s] = %+v\n", name, ip.Equations[name])
	}
}

// EquationNames returns the equation names in deterministic order.
func (ip *InputParameters) EquationNames() []string {
	keys := make([]string, len(ip.Equations))
	i := 0
	for k := range ip.Equations {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	return keys
}

// Apply resolves every equation block against the library capabilities
// and returns the configured equations, locked against further edits.
// Keys are applied in a fixed order so that the family selection takes
// hold before the solver and preconditioner keywords are routed.
func (ip *InputParameters) Apply(cap *sles.Capabilities) ([]*equation.Param, error) {
	var eqs []*equation.Param
	for fieldID, name := range ip.EquationNames() {
		spec := ip.Equations[name]
		eq := equation.New(name, fieldID)
		for _, kv := range spec.settings() {
			if err := eq.Set(kv[0], kv[1], cap); err != nil {
				return nil, fmt.Errorf("equation %q: %w", name, err)
			}
		}
		eq.Lock()
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

// settings linearizes the non-zero fields into (key, value) pairs.
func (es EquationSpec) settings() (kvs [][2]string) {
	add := func(key, val string) {
		kvs = append(kvs, [2]string{key, val})
	}
	if es.SolverFamily != "" {
		add("solver_family", es.SolverFamily)
	}
	if es.Solver != "" {
		add("solver", es.Solver)
	}
	if es.Precond != "" {
		add("precond", es.Precond)
	}
	if es.AMGType != "" {
		add("amg_type", es.AMGType)
	}
	if es.MaxIterations != 0 {
		add("max_iter", strconv.Itoa(es.MaxIterations))
	}
	if es.Rtol != 0 {
		add("rtol", strconv.FormatFloat(es.Rtol, 'e', -1, 64))
	}
	if es.Atol != 0 {
		add("atol", strconv.FormatFloat(es.Atol, 'e', -1, 64))
	}
	if es.Dtol != 0 {
		add("dtol", strconv.FormatFloat(es.Dtol, 'e', -1, 64))
	}
	if es.Restart != 0 {
		add("restart", strconv.Itoa(es.Restart))
	}
	if es.Verbosity != 0 {
		add("verbosity", strconv.Itoa(es.Verbosity))
	}
	if es.ResNorm != "" {
		add("resnorm", es.ResNorm)
	}
	return kvs
}
