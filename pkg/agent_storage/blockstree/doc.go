/*
Package blockstree describes the sharded directory layout of agent block
files.

Storage agents historically kept every block file in a single flat blocks
directory. Given that handling many files in the same directory is usually
problematic for file systems, block files are being put into subdirectories
by their IDs. A block file is named <hex-id>.data or <hex-id>.meta and its
destination is the shard directory named after hex-id mod 4096, formatted
as a 3-digit lowercase hexadecimal string with the .blocks suffix:

	<root>/
	├── 000.blocks/
	├── 001.blocks/
	│   ...
	├── fff.blocks/
	└── other.blocks/

Files whose names do not follow the <hex-id>.<data|meta> pattern cannot be
assigned a shard and are collected in the other.blocks catch-all directory
instead.
*/
package blockstree
