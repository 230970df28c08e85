package generator

import (
	"fmt"
	"regexp"
	"sort"
)

// Well-known variable names every template can rely on.
const (
	VarProjectName = "projectName"
	VarDBProvider  = "dbProvider"
)

// Database provider values accepted for VarDBProvider.
const (
	DBProviderPostgres = "postgres"
	DBProviderSQLite   = "sqlite"
	DBProviderAuto     = "auto"
)

// projectNamePattern is the identifier-like shape a project name must have.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidProjectName reports whether name has the shape of a project name.
func ValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}

// Variables maps placeholder names to substitution values.
// A name that is not present in the map is undefined: its {{name}} markers
// are left untouched.
type Variables map[string]string

// NewVariables builds the variable set for a project and validates the
// required keys.
func NewVariables(projectName, dbProvider string) (Variables, error) {
	vars := Variables{
		VarProjectName: projectName,
		VarDBProvider:  dbProvider,
	}
	if err := vars.Validate(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Validate checks that projectName and dbProvider are present and well formed.
func (v Variables) Validate() error {
	name, ok := v[VarProjectName]
	if !ok || name == "" {
		return newGeneratorError(GeneratorInvalidVariables, "project name is required", VarProjectName, nil)
	}
	if !ValidProjectName(name) {
		return newGeneratorError(GeneratorInvalidVariables,
			fmt.Sprintf("invalid project name %q", name), VarProjectName, nil)
	}

	switch v[VarDBProvider] {
	case DBProviderPostgres, DBProviderSQLite, DBProviderAuto:
	default:
		return newGeneratorError(GeneratorInvalidVariables,
			fmt.Sprintf("invalid database provider %q (expected postgres, sqlite or auto)", v[VarDBProvider]),
			VarDBProvider, nil)
	}

	return nil
}

// With returns a copy of v with key set to value.
func (v Variables) With(key, value string) Variables {
	out := make(Variables, len(v)+1)
	for k, val := range v {
		out[k] = val
	}
	out[key] = value
	return out
}

// Keys returns the variable names in sorted order.
func (v Variables) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
