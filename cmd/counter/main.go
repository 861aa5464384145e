package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/landlord-counter/internal/config"
	"github.com/palemoky/landlord-counter/internal/logger"
	"github.com/palemoky/landlord-counter/internal/sound"
	"github.com/palemoky/landlord-counter/internal/tracker"
	"github.com/palemoky/landlord-counter/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	plain := flag.Bool("plain", false, "使用逐行输入模式")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
	}

	if logErr := logger.Init(cfg.Log); logErr != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", logErr)
	}
	defer logger.Close()
	if err != nil {
		logger.Warn("加载配置文件失败，使用默认配置: %v", err)
	}

	t := tracker.New()

	if *plain || cfg.UI.Mode == config.ModePlain {
		if err := ui.RunPlain(t, os.Stdin, os.Stdout); err != nil {
			logger.Error("读取输入失败: %v", err)
			log.Fatalf("读取输入失败: %v", err)
		}
		return
	}

	sm := sound.NewSoundManager(cfg.Sound)
	if err := sm.Init(); err != nil {
		logger.Warn("音效不可用: %v", err)
	}
	defer sm.Close()

	if err := runTUI(t, cfg, sm); err != nil {
		log.Fatalf("启动记牌器时出错: %v", err)
	}
}

func runTUI(t *tracker.Tracker, cfg *config.Config, sm *sound.SoundManager) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Panic(r)
			err = fmt.Errorf("panic: %v (详见 %s)", r, logger.Path())
		}
	}()

	model := ui.NewModel(t, ui.Options{
		Color: cfg.UI.ColorEnabled(),
		Sound: sm,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
