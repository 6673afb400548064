package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/exp/rand"
)

// 参数为 0 时，子进程连 execve 都无法完成，直接拒绝
var ErrZeroStackSize = errors.New("stack size must be greater than 0")

// 根据命令行参数生成 probe 的 Config
func CreateConfig(ctx *cli.Context) (*Config, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("requires exactly 1 argument STACK_SIZE, got %d", ctx.NArg())
	}

	stackSize, err := ParseStackSize(ctx.Args().First())
	if err != nil {
		return nil, err
	}

	return &Config{
		StackSize: stackSize,
		Hostname:  generateHostname(),
		Debug:     ctx.GlobalBool("debug"),
	}, nil
}

// 将命令行参数解析为栈大小，单位为字节
func ParseStackSize(arg string) (uint64, error) {
	size, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse stack size %q: %v", arg, err)
	}
	if size == 0 {
		return 0, ErrZeroStackSize
	}
	return size, nil
}

// 将 init 参数编码后写入管道
func WriteInitParams(w io.Writer, params *InitParams) error {
	if err := json.NewEncoder(w).Encode(params); err != nil {
		return fmt.Errorf("encode init params: %v", err)
	}
	return nil
}

// 从管道中读取 init 参数
func ReadInitParams(r io.Reader) (*InitParams, error) {
	params := &InitParams{}
	if err := json.NewDecoder(r).Decode(params); err != nil {
		return nil, fmt.Errorf("decode init params: %v", err)
	}
	return params, nil
}

// 预定义的形容词列表
var adjectives = []string{
	"admiring", "adoring", "affectionate", "agitated", "amazing",
	"angry", "awesome", "blissful", "boring", "brave",
	"charming", "clever", "cool", "compassionate", "competent",
	"confident", "cranky", "crazy", "dazzling", "determined",
}

// 预定义的名词列表
var nouns = []string{
	"albattani", "allen", "almeida", "agnesi", "archimedes",
	"ardinghelli", "aryabhata", "austin", "babbage", "banach",
	"banzai", "bardeen", "bartik", "bassi", "beaver",
	"bell", "benz", "bhabha", "bhaskara", "blackwell",
}

// 生成随机主机名，用于在日志中区分不同的 probe 子进程
func generateHostname() string {
	rand.Seed(uint64(time.Now().UnixNano()))
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return fmt.Sprintf("probe-%s-%s", adj, noun)
}
