package address

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/base58check"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
	"github.com/weisyn/scriptkit/pkg/types"
)

// secp256k1群阶的大端字节
const groupOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func TestWIFRoundTrip(t *testing.T) {
	w := NewWIF(netparams.Default())
	key := mustHex(t, "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d")

	testCases := []struct {
		wif        string
		network    string
		compressed bool
	}{
		{"KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617", "mainnet", true},
		{"cMzLdeGd5vEqxB8B6VFQoRopQ3sLAAvEzDAoQgvX54xwofSWj1fx", "testnet", true},
		{"5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ", "mainnet", false},
		{"91gGn1HgSap6CbU12F6z3pJri26xzp7Ay1VW6NHCoEayNXwRpu2", "testnet", false},
	}

	for _, tc := range testCases {
		net, ok := netparams.Default().ByName(tc.network)
		if !ok {
			t.Fatalf("未知网络: %s", tc.network)
		}

		encoded, err := w.Encode(key, *net, tc.compressed)
		if err != nil {
			t.Errorf("%s: 编码失败: %v", tc.wif, err)
			continue
		}
		if encoded != tc.wif {
			t.Errorf("WIF编码不匹配: %s != %s", encoded, tc.wif)
		}

		info, err := w.Decode(tc.wif)
		if err != nil {
			t.Errorf("%s: 解码失败: %v", tc.wif, err)
			continue
		}
		if !bytes.Equal(info.Key[:], key) {
			t.Errorf("%s: 标量不匹配: %x", tc.wif, info.Key)
		}
		if info.Network.Name != tc.network {
			t.Errorf("%s: 网络不匹配: %s", tc.wif, info.Network.Name)
		}
		if info.Compressed != tc.compressed {
			t.Errorf("%s: 压缩标记不匹配: %v", tc.wif, info.Compressed)
		}
	}

	// 两侧空白在解码前剥离
	for _, padded := range []string{
		" KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617",
		"KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617 ",
	} {
		info, err := w.Decode(padded)
		if err != nil {
			t.Errorf("带空白WIF解码失败: %v", err)
			continue
		}
		if !bytes.Equal(info.Key[:], key) {
			t.Error("带空白WIF解码结果不正确")
		}
	}
}

func TestWIFEncodeRejects(t *testing.T) {
	w := NewWIF(netparams.Default())

	testCases := []struct {
		key         []byte
		errContains string
		description string
	}{
		{
			key:         mustHex(t, groupOrderHex),
			errContains: "private key not in 1..n-1",
			description: "标量等于群阶",
		},
		{
			key:         bytes.Repeat([]byte{0xff}, 32),
			errContains: "private key not in 1..n-1",
			description: "标量溢出",
		},
		{
			key:         make([]byte, 32),
			errContains: "private key not in 1..n-1",
			description: "零标量",
		},
		{
			key:         bytes.Repeat([]byte{0x02}, 33),
			errContains: "invalid private key length: 33",
			description: "33字节不是标量",
		},
		{
			key:         bytes.Repeat([]byte{0x02}, 31),
			errContains: "invalid private key length: 31",
			description: "31字节不是标量",
		},
	}

	for _, tc := range testCases {
		_, err := w.Encode(tc.key, netparams.MainNet, true)
		if err == nil {
			t.Errorf("%s: 应该编码失败", tc.description)
			continue
		}
		if !errors.Is(err, types.ErrInvalidStructure) {
			t.Errorf("%s: 错误类别不匹配: %v", tc.description, err)
		}
		if !strings.Contains(err.Error(), tc.errContains) {
			t.Errorf("%s: 错误消息应包含 %q, 实际 %v", tc.description, tc.errContains, err)
		}
	}
}

func TestWIFDecodeRejects(t *testing.T) {
	w := NewWIF(netparams.Default())
	goodKey := bytes.Repeat([]byte{0x02}, 32)

	buildWIF := func(payload []byte) string {
		return base58check.Encode(payload)
	}

	testCases := []struct {
		wif         string
		errKind     error
		description string
	}{
		{
			wif:         buildWIF(append([]byte{0x80}, mustHex(t, groupOrderHex)...)),
			errKind:     types.ErrInvalidStructure,
			description: "标量等于群阶",
		},
		{
			wif:         buildWIF(bytes.Repeat([]byte{0x02}, 33)),
			errKind:     types.ErrUnknownNetworkOrPrefix,
			description: "压缩公钥字节不是WIF载荷",
		},
		{
			wif:         buildWIF(append([]byte{0x81}, goodKey...)),
			errKind:     types.ErrUnknownNetworkOrPrefix,
			description: "版本字节0x81未注册",
		},
		{
			wif:         buildWIF(append(append([]byte{0x80}, goodKey...), 0x00)),
			errKind:     types.ErrInvalidStructure,
			description: "压缩标记字节不是0x01",
		},
		{
			wif:         buildWIF(append(append([]byte{0x80}, goodKey...), 0x01, 0x00)),
			errKind:     types.ErrInvalidStructure,
			description: "35字节载荷长度非法",
		},
		{
			wif:         "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98618",
			errKind:     types.ErrMalformedEncoding,
			description: "校验和损坏",
		},
		{
			wif:         "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwY0P98617",
			errKind:     types.ErrMalformedEncoding,
			description: "字母表外字符",
		},
	}

	for _, tc := range testCases {
		_, err := w.Decode(tc.wif)
		if err == nil {
			t.Errorf("%s: 应该解码失败", tc.description)
			continue
		}
		if !errors.Is(err, tc.errKind) {
			t.Errorf("%s: 错误类别不匹配: %v", tc.description, err)
		}
	}

	// 解码失败消息统一带有not a private key前缀
	_, err := w.Decode(buildWIF(append([]byte{0x81}, goodKey...)))
	if err == nil || !strings.Contains(err.Error(), "not a private key") {
		t.Errorf("错误消息不匹配: %v", err)
	}
}
