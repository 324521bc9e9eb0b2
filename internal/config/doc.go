// Package config provides configuration parsing for the vrec CLI and
// devtools.
//
// The configuration is stored in vrec.yaml in the working directory. The
// file is optional; every field has a default.
//
// # Configuration File Structure
//
//	log:
//	  level: debug
//	reconciler:
//	  keyed: true
//	devserver:
//	  addr: localhost:7070
//	metrics:
//	  namespace: vrec
//	snapshot:
//	  dir: .vrec/snapshots
//	  s3:
//	    bucket: my-snapshots
//	    prefix: ui/
//	    region: eu-west-1
//	    endpoint: http://localhost:9000
//
// # Usage
//
//	cfg, err := config.LoadOptional(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Devserver:", cfg.Devserver.Addr)
package config
