// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/radialgrid/feeder"
	"github.com/katalvlaran/radialgrid/radial"
)

// networkFile is the on-disk network description. JSON is accepted too,
// being a subset of YAML. IDs are either all integers or all strings.
type networkFile[ID cmp.Ordered] struct {
	Source   ID             `json:"source" yaml:"source"`
	Bus      *ID            `json:"bus,omitempty" yaml:"bus,omitempty"`
	Feeders  []ID           `json:"feeders,omitempty" yaml:"feeders,omitempty"`
	Vertices []ID           `json:"vertices" yaml:"vertices"`
	Edges    []edgeSpec[ID] `json:"edges" yaml:"edges"`
	Loads    []loadSpec[ID] `json:"loads,omitempty" yaml:"loads,omitempty"`
}

type edgeSpec[ID cmp.Ordered] struct {
	ID      ID    `json:"id" yaml:"id"`
	From    ID    `json:"from" yaml:"from"`
	To      ID    `json:"to" yaml:"to"`
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"` // absent means closed
}

type loadSpec[ID cmp.Ordered] struct {
	ID     ID `json:"id" yaml:"id"`
	Vertex ID `json:"vertex" yaml:"vertex"`
}

// loaded is a decoded file together with its validated network.
type loaded[ID cmp.Ordered] struct {
	path string
	file networkFile[ID]
	net  *radial.Network[ID]
}

var (
	errNoNetwork = errors.New("no network file: set --network or " + envPrefix + "_NETWORK")
	errEmptyFile = errors.New("empty network file")
	errMixedIDs  = errors.New("ids mix numbers and strings: quote every id or none")
)

// document is a network file read from disk whose ID type is known but
// which is not decoded yet.
type document struct {
	path    string
	data    []byte
	numeric bool // every ID is a YAML integer
}

// readDocument reads the file named by --network and classifies its IDs.
func (st *state) readDocument() (*document, error) {
	path := st.v.GetString("network")
	if path == "" {
		return nil, errNoNetwork
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	numeric, err := numericIDs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &document{path: path, data: data, numeric: numeric}, nil
}

// load decodes doc with ID as the identifier type and validates the network.
func load[ID cmp.Ordered](st *state, doc *document) (*loaded[ID], error) {
	nf, err := decodeNetwork[ID](bytes.NewReader(doc.data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.path, err)
	}
	net, err := nf.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.path, err)
	}
	st.logger.Info("network loaded", "path", doc.path, "numeric_ids", doc.numeric,
		"vertices", net.VertexCount(), "lines", len(nf.Edges), "source", net.Source())

	return &loaded[ID]{path: doc.path, file: nf, net: net}, nil
}

func decodeNetwork[ID cmp.Ordered](r io.Reader) (networkFile[ID], error) {
	var nf networkFile[ID]
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&nf); err != nil {
		if errors.Is(err, io.EOF) {
			return nf, errEmptyFile
		}
		return nf, fmt.Errorf("decode: %w", err)
	}

	return nf, nil
}

// idKeys are the mapping keys whose values are IDs, at the top level or
// inside edges and loads.
var idKeys = map[string]bool{
	"source": true, "bus": true, "feeders": true, "vertices": true,
	"id": true, "from": true, "to": true, "vertex": true,
}

// numericIDs reports whether every ID scalar in the file is a YAML integer.
// Unquoted numbers next to string IDs are rejected, since yaml.v3 would
// otherwise turn them into strings that sort as text.
func numericIDs(data []byte) (bool, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return false, errEmptyFile
		}
		return false, fmt.Errorf("decode: %w", err)
	}

	var ints, strs int
	var firstInt *yaml.Node
	var visit func(n *yaml.Node, isID bool)
	visit = func(n *yaml.Node, isID bool) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				visit(c, false)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				visit(n.Content[i+1], idKeys[n.Content[i].Value])
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				visit(c, isID)
			}
		case yaml.ScalarNode:
			if !isID {
				return
			}
			switch n.ShortTag() {
			case "!!int":
				ints++
				if firstInt == nil {
					firstInt = n
				}
			case "!!null":
			default:
				strs++
			}
		}
	}
	visit(&root, false)

	if ints > 0 && strs > 0 {
		return false, fmt.Errorf("%w (number %s at line %d)", errMixedIDs, firstInt.Value, firstInt.Line)
	}

	return ints > 0, nil
}

// parseID converts a command-line ID to the file's ID type. A value that
// cannot be one is reported with the sentinel for a missing ID.
func parseID[ID cmp.Ordered](s string, unknown error) (ID, error) {
	var id ID
	switch p := any(&id).(type) {
	case *string:
		*p = s
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return id, fmt.Errorf("%w: %q is not an integer id", unknown, s)
		}
		*p = n
	default:
		return id, fmt.Errorf("unsupported id type %T", id)
	}

	return id, nil
}

// build converts the file into the parallel slices radial.New expects.
func (nf networkFile[ID]) build() (*radial.Network[ID], error) {
	ids := make([]ID, len(nf.Edges))
	pairs := make([][2]ID, len(nf.Edges))
	enabled := make([]bool, len(nf.Edges))
	for i, e := range nf.Edges {
		ids[i] = e.ID
		pairs[i] = [2]ID{e.From, e.To}
		enabled[i] = e.Enabled == nil || *e.Enabled
	}

	return radial.New(nf.Vertices, ids, pairs, enabled, nf.Source)
}

func (nf networkFile[ID]) loads() []feeder.Load[ID] {
	out := make([]feeder.Load[ID], len(nf.Loads))
	for i, l := range nf.Loads {
		out[i] = feeder.Load[ID]{ID: l.ID, Vertex: l.Vertex}
	}

	return out
}

// handler runs one command against a network with a concrete ID type and
// returns the value to render.
type handler[ID cmp.Ordered] func(ld *loaded[ID]) (any, error)

// run loads the network named by --network with the ID type its file uses,
// hands it to the matching handler and renders the result.
func (st *state) run(w io.Writer, ints handler[int], strs handler[string]) error {
	doc, err := st.readDocument()
	if err != nil {
		return err
	}

	var out any
	if doc.numeric {
		out, err = dispatch(st, doc, ints)
	} else {
		out, err = dispatch(st, doc, strs)
	}
	if err != nil {
		return err
	}

	return st.render(w, out)
}

func dispatch[ID cmp.Ordered](st *state, doc *document, h handler[ID]) (any, error) {
	ld, err := load[ID](st, doc)
	if err != nil {
		return nil, err
	}

	return h(ld)
}
