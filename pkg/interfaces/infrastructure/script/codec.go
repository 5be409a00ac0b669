// Package script 提供锁定脚本层的命令编解码接口定义
//
// 📍 **脚本命令编解码器 (Script Command Codec)**
//
// 本文件定义了锁定脚本的命令级编解码接口，专注于：
// - 序列化：命令序列到线上字节的确定性编码
// - 解析：线上字节到命令序列的逐字节游标解析
// - 推送规则：直接长度、OP_PUSHDATA1/2/4 的最小编码选择
// - 失败语义：截断或越界立即失败，不产生部分结果
//
// 🎯 **核心功能**
// - ScriptCodec：命令编解码器接口
// - 往返保证：本层产出的字节解析后重新序列化逐字节一致
//
// 🔗 **组件关系**
// - ScriptCodec：被模板引擎和地址翻译器用于构造脚本
// - 与 TemplateEngine：模板构造器通过编解码器产出规范字节
package script

import "github.com/weisyn/scriptkit/pkg/types"

// ScriptCodec 定义脚本命令编解码接口
//
// 命令模型为封闭三变体：命名操作码、整数字面量、字节推送。
// 序列化对整数选择最小表示（OP_0/OP_1NEGATE/OP_N 或最小推送），
// 对数据按长度选择推送标记；解析只产出操作码与推送两种命令，
// 非最小推送原样保留，不做规范化。
type ScriptCodec interface {
	// Serialize 将命令序列编码为线上字节
	//
	// 参数：
	//   - commands: 命令序列
	//
	// 返回：
	//   - []byte: 编码后的脚本字节
	//   - error: 推送数据超出上限等结构错误
	Serialize(commands []types.Command) ([]byte, error)

	// Parse 将线上字节解析为命令序列
	//
	// 推送数据越过脚本末尾、长度域截断等一律返回编码损坏错误，
	// 不产生部分解析结果。
	//
	// 参数：
	//   - script: 脚本字节
	//
	// 返回：
	//   - []types.Command: 命令序列（顺序与字节严格一致）
	//   - error: 编码损坏错误
	Parse(script []byte) ([]types.Command, error)
}
