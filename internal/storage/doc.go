// Package storage provides JSON-based persistence for extracted match records.
//
// Each record is written to its own file, match_<id>.json, where the id is the
// numeric match id from the match URL or a hash prefix of the URL when it has
// none. Saving the same match again replaces the earlier file. The default
// storage location is ~/.local/share/cricscore/.
package storage
