package netparams

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/weisyn/scriptkit/pkg/types"
)

func TestDefaultRegistryLookups(t *testing.T) {
	r := Default()

	testCases := []struct {
		name        string
		p2pkh       byte
		p2sh        byte
		wif         byte
		hrp         string
		description string
	}{
		{name: "mainnet", p2pkh: 0x00, p2sh: 0x05, wif: 0x80, hrp: "bc", description: "主网参数"},
		{name: "testnet", p2pkh: 0x6f, p2sh: 0xc4, wif: 0xef, hrp: "tb", description: "测试网参数"},
	}

	for _, tc := range testCases {
		net, ok := r.ByName(tc.name)
		if !ok {
			t.Errorf("%s: 按名称查找失败", tc.description)
			continue
		}
		if net.P2PKHPrefix != tc.p2pkh || net.P2SHPrefix != tc.p2sh ||
			net.WIFPrefix != tc.wif || net.Bech32HRP != tc.hrp {
			t.Errorf("%s: 参数不匹配: %+v", tc.description, *net)
		}

		// 四类反向解析都应命中同一网络
		if got, ok := r.FromP2PKHPrefix(tc.p2pkh); !ok || got.Name != tc.name {
			t.Errorf("%s: p2pkh前缀反向解析失败", tc.description)
		}
		if got, ok := r.FromP2SHPrefix(tc.p2sh); !ok || got.Name != tc.name {
			t.Errorf("%s: p2sh前缀反向解析失败", tc.description)
		}
		if got, ok := r.FromWIFPrefix(tc.wif); !ok || got.Name != tc.name {
			t.Errorf("%s: wif前缀反向解析失败", tc.description)
		}
		if got, ok := r.FromHRP(tc.hrp); !ok || got.Name != tc.name {
			t.Errorf("%s: hrp反向解析失败", tc.description)
		}
	}

	// 未注册前缀不应命中
	if _, ok := r.FromP2PKHPrefix(0x30); ok {
		t.Error("未注册的p2pkh前缀不应命中")
	}
	if _, ok := r.FromHRP("bcrt"); ok {
		t.Error("regtest的hrp不应出现在内置注册表中")
	}
}

func TestCaseInsensitiveLookups(t *testing.T) {
	r := Default()

	if _, ok := r.ByName("MAINNET"); !ok {
		t.Error("网络名称查找应不区分大小写")
	}
	if _, ok := r.FromHRP("TB"); !ok {
		t.Error("HRP查找应不区分大小写")
	}
}

// TestAgainstBtcdChainParams 差分测试：内置参数必须与btcd的链参数一致
func TestAgainstBtcdChainParams(t *testing.T) {
	testCases := []struct {
		params      types.NetworkParams
		reference   chaincfg.Params
		description string
	}{
		{params: MainNet, reference: chaincfg.MainNetParams, description: "主网"},
		{params: TestNet, reference: chaincfg.TestNet3Params, description: "测试网"},
	}

	for _, tc := range testCases {
		if tc.params.P2PKHPrefix != tc.reference.PubKeyHashAddrID {
			t.Errorf("%s: p2pkh前缀与btcd不一致: 0x%02x vs 0x%02x",
				tc.description, tc.params.P2PKHPrefix, tc.reference.PubKeyHashAddrID)
		}
		if tc.params.P2SHPrefix != tc.reference.ScriptHashAddrID {
			t.Errorf("%s: p2sh前缀与btcd不一致: 0x%02x vs 0x%02x",
				tc.description, tc.params.P2SHPrefix, tc.reference.ScriptHashAddrID)
		}
		if tc.params.WIFPrefix != tc.reference.PrivateKeyID {
			t.Errorf("%s: wif前缀与btcd不一致: 0x%02x vs 0x%02x",
				tc.description, tc.params.WIFPrefix, tc.reference.PrivateKeyID)
		}
		if tc.params.Bech32HRP != tc.reference.Bech32HRPSegwit {
			t.Errorf("%s: hrp与btcd不一致: %s vs %s",
				tc.description, tc.params.Bech32HRP, tc.reference.Bech32HRPSegwit)
		}
	}
}

func TestRegistryConflicts(t *testing.T) {
	testCases := []struct {
		networks    []types.NetworkParams
		description string
	}{
		{
			networks:    []types.NetworkParams{MainNet, MainNet},
			description: "重复的网络名称",
		},
		{
			networks:    []types.NetworkParams{TestNet, RegTest},
			description: "regtest与testnet的版本字节冲突",
		},
		{
			networks: []types.NetworkParams{
				MainNet,
				{Name: "other", P2PKHPrefix: 0x30, P2SHPrefix: 0x32, WIFPrefix: 0xb0, Bech32HRP: "bc"},
			},
			description: "重复的HRP",
		},
		{
			networks:    []types.NetworkParams{{Name: "nohrp", P2PKHPrefix: 0x10, P2SHPrefix: 0x11, WIFPrefix: 0x90}},
			description: "缺少HRP的不完整参数",
		},
		{
			networks:    nil,
			description: "空网络列表",
		},
	}

	for _, tc := range testCases {
		_, err := New(tc.networks...)
		if err == nil {
			t.Errorf("%s: 应该构造失败", tc.description)
			continue
		}
		if !errors.Is(err, types.ErrInvalidStructure) {
			t.Errorf("%s: 错误类别应为结构无效, 实际 %v", tc.description, err)
		}
	}
}

func TestRegTestStandaloneRegistry(t *testing.T) {
	// regtest可与主网共存（版本字节不冲突），不能与测试网共存
	r, err := New(MainNet, RegTest)
	if err != nil {
		t.Fatalf("mainnet+regtest注册表应可构造: %v", err)
	}

	net, ok := r.FromHRP("bcrt")
	if !ok || net.Name != "regtest" {
		t.Error("regtest的hrp应可反向解析")
	}
}

func TestNetworksReturnsCopy(t *testing.T) {
	r := Default()

	nets := r.Networks()
	if len(nets) != 2 {
		t.Fatalf("内置注册表应包含2个网络, 实际 %d", len(nets))
	}

	// 修改返回的副本不应影响注册表
	nets[0].Name = "mutated"
	if net, ok := r.ByName("mainnet"); !ok || net.Name != "mainnet" {
		t.Error("Networks返回的切片应为副本")
	}
}
