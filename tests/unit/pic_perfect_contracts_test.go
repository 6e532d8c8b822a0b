package unit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	httptransport "arcade/contexts/challenge-arcade/pic-perfect-service/transport/http"
)

func TestPicPerfectOpenAPIContractIncludesImplementedRoutes(t *testing.T) {
	root, err := findRepoRoot()
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "contracts", "api", "v1", "pic-perfect.openapi.json"))
	if err != nil {
		t.Fatalf("read pic-perfect openapi: %v", err)
	}

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode pic-perfect openapi: %v", err)
	}

	expected := map[string][]string{
		"/admin/pic-perfect/start":             {"post"},
		"/admin/pic-perfect/hidden-image":      {"post"},
		"/admin/pic-perfect/transition":        {"post"},
		"/admin/pic-perfect/calculate-scores":  {"post"},
		"/admin/pic-perfect/finalize":          {"post"},
		"/admin/pic-perfect/reset":             {"post"},
		"/admin/pic-perfect/status":            {"get"},
		"/admin/pic-perfect/submission-status": {"get"},
		"/admin/pic-perfect/voting-status":     {"get"},
		"/pic-perfect/images":                  {"post"},
		"/pic-perfect/votes":                   {"post"},
		"/pic-perfect/votes/remaining":         {"get"},
		"/pic-perfect/voting-pool":             {"get"},
		"/pic-perfect/team-status":             {"get"},
		"/pic-perfect/leaderboard":             {"get"},
		"/pic-perfect/leaderboard/{team_name}": {"get"},
	}

	for path, methods := range expected {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Fatalf("missing path in openapi contract: %s", path)
		}
		for _, method := range methods {
			if _, ok := ops[method]; !ok {
				t.Fatalf("missing method %s for path %s in openapi contract", method, path)
			}
		}
	}
}

func TestTeamRegistryOpenAPIContractIncludesImplementedRoutes(t *testing.T) {
	root, err := findRepoRoot()
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "contracts", "api", "v1", "team-registry.openapi.json"))
	if err != nil {
		t.Fatalf("read team-registry openapi: %v", err)
	}

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode team-registry openapi: %v", err)
	}

	expected := map[string][]string{
		"/admin/teams":             {"get", "post"},
		"/admin/teams/{team_name}": {"get", "delete"},
	}

	for path, methods := range expected {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Fatalf("missing path in openapi contract: %s", path)
		}
		for _, method := range methods {
			if _, ok := ops[method]; !ok {
				t.Fatalf("missing method %s for path %s in openapi contract", method, path)
			}
		}
	}
}

func TestPicPerfectEventSchemasCoverCanonicalEventSet(t *testing.T) {
	root, err := findRepoRoot()
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}

	eventTypes := []string{
		"challenge.started",
		"challenge.hidden_image_set",
		"challenge.state_changed",
		"challenge.scores_calculated",
		"challenge.finalized",
		"challenge.reset",
		"submission.received",
		"vote.cast",
	}

	requiredEnvelopeFields := []string{
		"event_id",
		"event_type",
		"occurred_at",
		"source_service",
		"trace_id",
		"schema_version",
		"partition_key_path",
		"partition_key",
		"data",
	}

	for _, eventType := range eventTypes {
		path := filepath.Join(root, "contracts", "events", "v1", eventType+".schema.json")
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read event schema %s: %v", eventType, err)
		}

		var schema map[string]any
		if err := json.Unmarshal(raw, &schema); err != nil {
			t.Fatalf("decode event schema %s: %v", eventType, err)
		}

		if title, _ := schema["title"].(string); title != eventType {
			t.Fatalf("schema %s has wrong title: %q", eventType, title)
		}

		required, _ := schema["required"].([]any)
		for _, key := range requiredEnvelopeFields {
			if !containsAnyString(required, key) {
				t.Fatalf("schema %s missing required envelope key %s", eventType, key)
			}
		}

		properties, _ := schema["properties"].(map[string]any)
		eventTypeProp, _ := properties["event_type"].(map[string]any)
		if eventConst, _ := eventTypeProp["const"].(string); eventConst != eventType {
			t.Fatalf("schema %s has wrong event_type const: %q", eventType, eventConst)
		}

		// Every engine event partitions on the challenge so per-challenge
		// ordering survives the broker.
		partitionPathProp, _ := properties["partition_key_path"].(map[string]any)
		if partitionConst, _ := partitionPathProp["const"].(string); partitionConst != "challenge_id" {
			t.Fatalf("schema %s has wrong partition_key_path const: %q", eventType, partitionConst)
		}
	}
}

func TestPicPerfectEmittedEventEnvelopeContractConsistency(t *testing.T) {
	ctx := context.Background()
	module := votingPicPerfectModule(t, []string{"alpha", "bravo", "charlie", "delta"})

	hidden := "https://img.example/original.png"
	ballots := map[string][]string{
		"alpha":   {"https://img.example/bravo.png", "https://img.example/charlie.png", hidden},
		"bravo":   {"https://img.example/alpha.png", "https://img.example/charlie.png", "https://img.example/delta.png"},
		"charlie": {"https://img.example/alpha.png", "https://img.example/bravo.png", hidden},
		"delta":   {"https://img.example/alpha.png", "https://img.example/bravo.png", "https://img.example/charlie.png"},
	}
	for team, urls := range ballots {
		castPicPerfectBallot(t, module, team, urls)
	}
	if _, err := module.Handler.TransitionStateHandler(ctx, httptransport.TransitionStateRequest{TargetState: "scoring"}); err != nil {
		t.Fatalf("transition to scoring failed: %v", err)
	}
	if _, err := module.Handler.CalculateScoresHandler(ctx); err != nil {
		t.Fatalf("calculate scores failed: %v", err)
	}
	if _, err := module.Handler.FinalizeChallengeHandler(ctx); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if _, err := module.Handler.ResetChallengeHandler(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	pendingOutbox, err := module.Store.ListPendingOutbox(ctx, 100)
	if err != nil {
		t.Fatalf("list pending outbox failed: %v", err)
	}

	expectedTypes := map[string]bool{
		"challenge.started":           false,
		"challenge.hidden_image_set":  false,
		"challenge.state_changed":     false,
		"challenge.scores_calculated": false,
		"challenge.finalized":         false,
		"challenge.reset":             false,
		"submission.received":         false,
		"vote.cast":                   false,
	}

	for _, message := range pendingOutbox {
		var envelope map[string]any
		if err := json.Unmarshal(message.Payload, &envelope); err != nil {
			t.Fatalf("decode outbox envelope failed: %v", err)
		}
		eventType, _ := envelope["event_type"].(string)
		if _, tracked := expectedTypes[eventType]; !tracked {
			t.Fatalf("unexpected event type in outbox: %q", eventType)
		}
		expectedTypes[eventType] = true

		if sourceService, _ := envelope["source_service"].(string); sourceService != "pic-perfect-service" {
			t.Fatalf("event %s has invalid source_service %q", eventType, sourceService)
		}
		if traceID, _ := envelope["trace_id"].(string); strings.TrimSpace(traceID) == "" {
			t.Fatalf("event %s missing trace_id", eventType)
		}
		if partitionPath, _ := envelope["partition_key_path"].(string); partitionPath != "challenge_id" {
			t.Fatalf("event %s has invalid partition_key_path %q", eventType, partitionPath)
		}
		partitionKey, _ := envelope["partition_key"].(string)
		if strings.TrimSpace(partitionKey) == "" {
			t.Fatalf("event %s missing partition_key", eventType)
		}

		data, _ := envelope["data"].(map[string]any)
		dataChallengeID, _ := data["challenge_id"].(string)
		if dataChallengeID != partitionKey {
			t.Fatalf("event %s partition mismatch: data.challenge_id=%q partition_key=%q", eventType, dataChallengeID, partitionKey)
		}
	}

	for eventType, seen := range expectedTypes {
		if !seen {
			t.Fatalf("expected emitted event type not found in outbox: %s", eventType)
		}
	}
}

func containsAnyString(values []any, target string) bool {
	for _, item := range values {
		if value, ok := item.(string); ok && value == target {
			return true
		}
	}
	return false
}
