// Package server serves the adb tools and resources over MCP.
//
// A Handler is created per session and tracks that session's in-flight requests. It answers initialize, ping,
// tools/list, tools/call, resources/list, resources/templates/list,
// resources/read and logging/setLevel, and honours notifications/cancelled by
// cancelling the context of the matching request. Servers are exposed over
// stdio or HTTP (SSE or streamable):
//
//	s, _ := server.New(server.WithRegistry(tools), server.WithResources(resources))
//	log.Fatal(s.Stdio(ctx).ListenAndServe())
package server
