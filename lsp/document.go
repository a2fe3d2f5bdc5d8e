package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/parsec"
)

// document is an open text document and the outcome of its last parse.
type document struct {
	version protocol.Integer
	text    string
	tree    *cst.Node
	err     error
}

// documents holds the open documents. Handlers may run concurrently.
type documents struct {
	grammar grammars.Grammar

	mu   sync.Mutex
	docs map[protocol.DocumentUri]*document
}

func newDocuments(g grammars.Grammar) *documents {
	return &documents{
		grammar: g,
		docs:    make(map[protocol.DocumentUri]*document),
	}
}

// update replaces the text of uri and parses it.
func (d *documents) update(uri protocol.DocumentUri, version protocol.Integer, text string) *document {
	doc := &document{version: version, text: text}
	doc.tree, doc.err = parsec.ParseString(d.grammar.Root, text, parsec.WithFile(uriToPath(uri)))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = doc
	return doc
}

func (d *documents) get(uri protocol.DocumentUri) *document {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.docs[uri]
}

func (d *documents) remove(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}
