package base58check

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/weisyn/scriptkit/pkg/types"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		payloadHex  string
		encoded     string
		description string
	}{
		{
			payloadHex:  "0012ab8dc588ca9d5787dde7eb29569da63c3a238c",
			encoded:     "12higDjoCCNXSA95xZMWUdPvXNmkAduhWv",
			description: "主网p2pkh地址载荷",
		},
		{
			payloadHex:  "00f54a5851e9372b87810a8e60cdd2e7cfd80b6e31",
			encoded:     "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
			description: "压缩公钥HASH160载荷",
		},
		{
			payloadHex:  "800c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
			encoded:     "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
			description: "主网非压缩WIF载荷",
		},
	}

	for _, tc := range testCases {
		payload, err := hex.DecodeString(tc.payloadHex)
		if err != nil {
			t.Fatalf("%s: 解码载荷失败: %v", tc.description, err)
		}

		encoded := Encode(payload)
		if encoded != tc.encoded {
			t.Errorf("%s: 编码不匹配\n期望: %s\n实际: %s", tc.description, tc.encoded, encoded)
		}

		decoded, err := Decode(tc.encoded)
		if err != nil {
			t.Errorf("%s: 解码失败: %v", tc.description, err)
			continue
		}
		if hex.EncodeToString(decoded) != tc.payloadHex {
			t.Errorf("%s: 解码载荷不匹配\n期望: %s\n实际: %x", tc.description, tc.payloadHex, decoded)
		}
	}
}

func TestLeadingZeroBytes(t *testing.T) {
	// 前导零字节必须与前导'1'字符一一对应
	payload := []byte{0x00, 0x00, 0x00, 0x01, 0x02}
	encoded := Encode(payload)

	if encoded[0] != '1' || encoded[1] != '1' || encoded[2] != '1' {
		t.Errorf("前导零字节应编码为前导'1'字符: %s", encoded)
	}
	if encoded[3] == '1' {
		t.Errorf("非零字节不应产生额外的'1'字符: %s", encoded)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if hex.EncodeToString(decoded) != hex.EncodeToString(payload) {
		t.Errorf("往返不一致: 期望 %x, 实际 %x", payload, decoded)
	}
}

func TestDecodeWhitespaceTolerance(t *testing.T) {
	// 两侧空白在解码前剥离
	decoded, err := Decode("  1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs\n")
	if err != nil {
		t.Fatalf("带空白的文本应可解码: %v", err)
	}
	if hex.EncodeToString(decoded) != "00f54a5851e9372b87810a8e60cdd2e7cfd80b6e31" {
		t.Errorf("解码载荷不匹配: %x", decoded)
	}
}

func TestDecodeFailures(t *testing.T) {
	testCases := []struct {
		text        string
		description string
	}{
		{
			text:        "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUA0",
			description: "非法字符0",
		},
		{
			text:        "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAt",
			description: "校验和不匹配",
		},
		{
			text:        "1",
			description: "长度不足以容纳校验和",
		},
		{
			text:        "",
			description: "空字符串",
		},
	}

	for _, tc := range testCases {
		_, err := Decode(tc.text)
		if err == nil {
			t.Errorf("%s: 应该解码失败", tc.description)
			continue
		}
		if !errors.Is(err, types.ErrMalformedEncoding) {
			t.Errorf("%s: 错误类别应为编码损坏, 实际 %v", tc.description, err)
		}
	}
}

func TestDecodeN(t *testing.T) {
	addr := "12higDjoCCNXSA95xZMWUdPvXNmkAduhWv"

	// 要求21字节时成功
	payload, err := DecodeN(addr, 21)
	if err != nil {
		t.Fatalf("按21字节解码失败: %v", err)
	}
	if len(payload) != 21 {
		t.Errorf("载荷长度错误: 期望 21, 实际 %d", len(payload))
	}

	// 要求其他长度时失败
	if _, err := DecodeN(addr, 20); !errors.Is(err, types.ErrMalformedEncoding) {
		t.Errorf("长度不符应返回编码损坏错误, 实际 %v", err)
	}
}
