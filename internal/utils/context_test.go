// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOperatorCtxKey(t *testing.T) {
	if OperatorCtxKey.String() != "operator" {
		t.Errorf("expected 'operator', got '%s'", OperatorCtxKey.String())
	}
}

func TestGetOperatorFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "alice")

	operator, ok := GetOperatorFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if operator != "alice" {
		t.Errorf("expected operator=alice, got %q", operator)
	}
}

func TestGetOperatorFromContext_Missing(t *testing.T) {
	operator, ok := GetOperatorFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if operator != "" {
		t.Errorf("expected empty operator, got %q", operator)
	}
}

func TestGetOperatorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, int64(42))

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetOperatorFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "")

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty operator, got true")
	}
}

func TestGetOperatorFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "bob")

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
