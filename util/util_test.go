package util

import (
	"bytes"
	"testing"
)

func TestCalculateHash(t *testing.T) {
	h1, err := CalculateHash([]byte("crowdfund"))
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	h2, _ := CalculateHash([]byte("crowdfund"))
	if !bytes.Equal(h1, h2) {
		t.Errorf("同一输入的hash应一致")
	}
	if len(h1) != 32 {
		t.Errorf("sha256摘要长度应为32，实际 %d", len(h1))
	}
}

func TestContains(t *testing.T) {
	arr := []string{"a", "b"}
	if !Contains(arr, "a") {
		t.Errorf("err")
	}
	if Contains(arr, "c") {
		t.Errorf("err")
	}
}

func TestGetKeyPair(t *testing.T) {
	priv, pub := GetKeyPair()
	if len(priv) == 0 || len(pub) == 0 {
		t.Errorf("公私钥不能为空")
	}
}
