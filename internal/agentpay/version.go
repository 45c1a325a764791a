package agentpay

import (
	"fmt"
	"runtime/debug"
)

const clientName = "agentpay-go"

var (
	clientVersion = "0.1.0"
	userAgent     string
)

func init() {
	goVersion := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}
	userAgent = fmt.Sprintf("%s/%s Go/%s", clientName, clientVersion, goVersion)
}
