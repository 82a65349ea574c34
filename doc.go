// Package mcpadb wires the adb bridge, the screenshot scratch store and the MCP
// server into a runnable process.
//
// Options come from command line flags, the ADB_PATH and MCP_ADB_SCRATCH
// environment variables and an optional YAML file; flags win over the file.
// NewServer probes the bridge with `adb version` and prepares the scratch
// directory before any request is served, so a misconfigured host fails at
// startup rather than on the first tool call.
//
// Example:
//
//	srv, _ := mcpadb.NewServer(ctx, &mcpadb.ServerOptions{Adb: "/opt/android/platform-tools/adb"})
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
package mcpadb
