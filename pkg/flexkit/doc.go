/*
Package flexkit provides a high-level API for reading FlexBuffers files.

# Quick Start

Open a file and look up a value by path:

	doc, err := flexkit.Open("config.flexb", flexkit.OpenOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	defer doc.Close()

	ref, err := doc.Find("servers/0/host")
	if err != nil {
	    log.Fatal(err)
	}
	host, _ := ref.AsString()

# Paths

A path is a sequence of segments separated by "/". Inside a map a segment
is a key; inside any other vector it is a decimal index. Empty segments are
ignored, so "", "/" and "//" all name the root.

# Memory

Open memory-maps the file read-only where the platform supports it. Every
Ref, string and blob obtained from a Buffer aliases the mapping and must not
be used after Close. Set OpenOptions.Copy to read the file onto the heap
instead.

# Error Handling

Errors carry the categories from package types:

	_, err := doc.Find("missing")
	if errors.Is(err, types.ErrNotFound) {
	    // absent key or index
	}

Open with OpenOptions.Verify returns a *verify.ValidationError for buffers
that decode at the root but are inconsistent deeper down.
*/
package flexkit
