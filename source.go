package atlasshift

import (
	"io"
	"sort"

	eng "github.com/reoring/atlasshift/internal/engine"
	"github.com/reoring/atlasshift/source/gojson"
	jsonsrc "github.com/reoring/atlasshift/source/json"
)

// JSONDriver turns JSON input into a token stream. The default is backed by
// goccy/go-json; an encoding/json driver is registered as well.
type JSONDriver interface {
	Name() string
	NewReader(r io.Reader) eng.TokenSource
}

type funcDriver struct {
	name string
	open func(io.Reader) eng.TokenSource
}

func (d funcDriver) Name() string                          { return d.name }
func (d funcDriver) NewReader(r io.Reader) eng.TokenSource { return d.open(r) }

// DefaultJSONDriver is the registry name used when Options.Driver is empty.
const DefaultJSONDriver = gojson.Name

var jsonDrivers = map[string]JSONDriver{
	gojson.Name:  funcDriver{name: gojson.Name, open: gojson.NewReader},
	jsonsrc.Name: funcDriver{name: jsonsrc.Name, open: jsonsrc.NewReader},
}

// LookupJSONDriver returns the driver registered under name. An empty name
// selects DefaultJSONDriver.
func LookupJSONDriver(name string) (JSONDriver, bool) {
	if name == "" {
		name = DefaultJSONDriver
	}
	d, ok := jsonDrivers[name]
	return d, ok
}

// JSONDriverNames lists registered drivers in sorted order.
func JSONDriverNames() []string {
	names := make([]string, 0, len(jsonDrivers))
	for n := range jsonDrivers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
