// Package molecule is a small molecular graph model that feeds the InChI
// bindings. Atoms and bonds are added through builder methods which keep a
// connectivity graph consistent; ToInput and FromStructure convert to and
// from the library representation, and Decode/Encode read and write YAML
// molecule files.
package molecule
