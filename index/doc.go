/*
Package index collects the in-memory index structures of basefs.

Indexes live entirely in general-purpose memory. They do not know about blocks,
pages or any on-disk layout; the filesystem layer owns persistence and hands keys
to an index for membership bookkeeping only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package index
