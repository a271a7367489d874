/*
Package operation implements the metadata transfer pipeline of autoexif.

	+-------------+     +-------------+     +-------------+
	|    Read     | --> |  Duplicate  | --> |   Select    |
	|  (engine)   |     |    (fs)     |     | (allowlist) |
	+-------------+     +-------------+     +------+------+
	                                               |
	                    +-------------+     +------+------+
	                    |  Write-back | <-- |    Clear    |
	                    |  (engine)   |     |  (engine)   |
	                    +------+------+     +------+------+
	                           |                   |
	                           +-- on failure: remove output

🎯 Purpose:
- Capture the input's metadata before anything destructive happens
- Produce a byte copy of the input at the output path
- Strip the copy completely, then write back only the allowed fields

🔄 Flow:
1. Read every field of the input
2. Copy the input to the output (atomic, see fileops)
3. Intersect the snapshot with the allow-list, add the reset marker
4. Clear all metadata of the output
5. Write the selected fields to the output
6. If 4 or 5 fails, delete the output and return the error

Run wraps the above with path resolution and owns the engine: it closes it
exactly once on every exit path.

🔍 Example:

	res, err := operation.Run(ctx, operation.Options{
	    Engine: engine.NewExiftool(),
	    FS:     fileops.OS{},
	}, operation.RunArgs{Input: "photo.jpg"})
*/
package operation
