package utils

import (
	"log"
	"strings"
)

// LogEvent prints one structured line per domain event. Messages must stay
// free of guest contact details; log references and counts, not payloads.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
