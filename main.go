// @title Course QA 后端 API
// @version 1.0
// @description 课程问答社区的后端服务器：问题与澄清、评审、信任评审人、记分卡与审批工作流。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"course_qa_backend/internal/app"
	"course_qa_backend/internal/config"
	"course_qa_backend/pkg/configwatcher"
	"course_qa_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 配置热加载
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		application.ReloadConfig(newCfg)
	})

	application.Run()
}
