package id

import (
	"errors"
	"fmt"
	"time"

	"github.com/sony/sonyflake"
)

// Generator 全局唯一、趋势递增的ID
type Generator interface {
	NextID() (int64, error)
}

// 基准时间 2024-01-01 00:00:00 UTC
var defaultStartTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var _ Generator = (*SonyflakeGenerator)(nil)

// SonyflakeGenerator 基于 sonyflake，同一个集群里 machineID 不能重复
type SonyflakeGenerator struct {
	sf *sonyflake.Sonyflake
}

func NewSonyflakeGenerator(machineID uint16) (*SonyflakeGenerator, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: defaultStartTime,
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
	if sf == nil {
		return nil, errors.New("初始化 sonyflake 失败")
	}
	return &SonyflakeGenerator{sf: sf}, nil
}

func (g *SonyflakeGenerator) NextID() (int64, error) {
	id, err := g.sf.NextID()
	if err != nil {
		return 0, fmt.Errorf("生成ID失败: %w", err)
	}
	return int64(id), nil
}

// ExtractTime 从ID中取出生成时间，精度是 10ms
func ExtractTime(id int64) time.Time {
	parts := sonyflake.Decompose(uint64(id))
	return defaultStartTime.Add(time.Duration(parts["time"]) * 10 * time.Millisecond)
}
