package template

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/codec"
	"github.com/weisyn/scriptkit/pkg/types"
)

// TestClassifyAgainstBtcd 与btcd的脚本归类对照
// 裸OP_RETURN与高版本见证程序在不同实现间归类口径不一致，不参与对照
func TestClassifyAgainstBtcd(t *testing.T) {
	testCases := []struct {
		scriptHex   string
		mine        types.ScriptType
		reference   txscript.ScriptClass
		description string
	}{
		{
			scriptHex:   "21" + keyCompressed + "ac",
			mine:        types.ScriptTypeP2PK,
			reference:   txscript.PubKeyTy,
			description: "压缩公钥直付",
		},
		{
			scriptHex:   "41" + keyP2PK + "ac",
			mine:        types.ScriptTypeP2PK,
			reference:   txscript.PubKeyTy,
			description: "未压缩公钥直付",
		},
		{
			scriptHex:   "76a91412ab8dc588ca9d5787dde7eb29569da63c3a238c88ac",
			mine:        types.ScriptTypeP2PKH,
			reference:   txscript.PubKeyHashTy,
			description: "公钥哈希支付",
		},
		{
			scriptHex:   "a914748284390f9e263a4b766a75d0633c50426eb87587",
			mine:        types.ScriptTypeP2SH,
			reference:   txscript.ScriptHashTy,
			description: "脚本哈希支付",
		},
		{
			scriptHex:   "0014751e76e8199196d454941c45d1b3a323f1433bd6",
			mine:        types.ScriptTypeP2WPKH,
			reference:   txscript.WitnessV0PubKeyHashTy,
			description: "见证公钥哈希支付",
		},
		{
			scriptHex:   "00207b5310339c6001f75614daa5083839fa54d46165f6c56025cc54d397a85a5708",
			mine:        types.ScriptTypeP2WSH,
			reference:   txscript.WitnessV0ScriptHashTy,
			description: "见证脚本哈希支付",
		},
		{
			scriptHex:   "5141" + keyUncompressed0 + "41" + keyUncompressed1 + "52ae",
			mine:        types.ScriptTypeP2MS,
			reference:   txscript.MultiSigTy,
			description: "1-of-2裸多签",
		},
		{
			scriptHex:   "6a0b68656c6c6f20776f726c64",
			mine:        types.ScriptTypeNullData,
			reference:   txscript.NullDataTy,
			description: "数据承载",
		},
		{
			scriptHex:   "6e879169a77ca787",
			mine:        types.ScriptTypeUnknown,
			reference:   txscript.NonStandardTy,
			description: "非标准脚本",
		},
	}

	for _, tc := range testCases {
		script, err := hex.DecodeString(tc.scriptHex)
		require.NoError(t, err, tc.description)

		info, err := Classify(script)
		require.NoError(t, err, tc.description)
		require.Equal(t, tc.mine, info.Type, "%s: 本地归类", tc.description)
		require.Equal(t, tc.reference, txscript.GetScriptClass(script), "%s: btcd归类", tc.description)
	}
}

// TestIntEncodingAgainstBtcd 整数字面量的最小编码与btcd逐字节一致
func TestIntEncodingAgainstBtcd(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, 15, 16, 17, 127, 128, 129, 255, 256, 500, 1000,
		32767, 32768, 65535, 65536, 8388607, 8388608,
		-2, -5, -127, -128, -129, -255, -256, -32768, -8388608,
	}

	for _, n := range values {
		ref, err := txscript.NewScriptBuilder().AddInt64(n).Script()
		require.NoError(t, err, "btcd编码 %d", n)

		mine, err := codec.Serialize([]types.Command{types.IntCommand(n)})
		require.NoError(t, err, "本地编码 %d", n)

		require.Equal(t, ref, mine, "整数 %d 的编码", n)
	}
}

// TestNullDataAgainstBtcd 数据承载脚本与btcd构造结果逐字节一致
func TestNullDataAgainstBtcd(t *testing.T) {
	for _, size := range []int{0, 1, 33, 75, 76, 80} {
		payload := bytes.Repeat([]byte{0x6f}, size)

		ref, err := txscript.NullDataScript(payload)
		require.NoError(t, err, "btcd构造 %d 字节", size)

		mine, err := NullData(payload)
		require.NoError(t, err, "本地构造 %d 字节", size)

		require.Equal(t, ref, mine, "%d 字节载荷", size)
	}

	_, err := txscript.NullDataScript(bytes.Repeat([]byte{0x6f}, 81))
	require.Error(t, err, "btcd拒绝81字节")
	_, err = NullData(bytes.Repeat([]byte{0x6f}, 81))
	require.Error(t, err, "本地拒绝81字节")
}

// TestMultiSigAgainstBtcd 裸多签构造与btcd逐字节一致
func TestMultiSigAgainstBtcd(t *testing.T) {
	rawKeys := [][]byte{
		mustHex(t, keyUncompressed0),
		mustHex(t, keyUncompressed1),
	}

	addrKeys := make([]*btcutil.AddressPubKey, len(rawKeys))
	for i, raw := range rawKeys {
		addr, err := btcutil.NewAddressPubKey(raw, &chaincfg.MainNetParams)
		require.NoError(t, err)
		addrKeys[i] = addr
	}

	for m := 1; m <= 2; m++ {
		ref, err := txscript.MultiSigScript(addrKeys, m)
		require.NoError(t, err, "btcd构造 %d-of-2", m)

		mine, err := MultiSig(m, rawKeys, false)
		require.NoError(t, err, "本地构造 %d-of-2", m)

		require.Equal(t, ref, mine, "%d-of-2 脚本", m)
	}
}
