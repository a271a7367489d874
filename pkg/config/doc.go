/*
Package config loads the settings of autoexif.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🔄 Precedence (later wins):
1. Defaults
2. Config file, format picked by extension, ${VAR} expanded
3. Environment (AUTOEXIF_*), optionally seeded from a dotenv file
4. Command line flags (applied by the caller)

The allow-list is not configurable.
*/
package config
