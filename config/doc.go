// Package config loads the YAML configuration of the primst command.
//
// Precedence: Default() first, then the YAML file (strict: unknown keys are
// errors), then command-line flags applied by the caller. Validate runs last.
//
// Example file:
//
//	frontier: btree
//	verify: true
//	markers:
//	  root: ROOT
//	  unreachable: UNREACHABLE
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  textfile: /var/lib/node_exporter/primst.prom
package config
