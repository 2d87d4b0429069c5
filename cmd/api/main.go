package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/escalator-hq/escalator-backend-go/internal/config"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	appHTTP "github.com/escalator-hq/escalator-backend-go/internal/handler/http"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/clock"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/cron"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
	"github.com/escalator-hq/escalator-backend-go/internal/repository/postgresql"
	contractService "github.com/escalator-hq/escalator-backend-go/internal/service/contract"
	employeeService "github.com/escalator-hq/escalator-backend-go/internal/service/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/service/journey"
	punchService "github.com/escalator-hq/escalator-backend-go/internal/service/punch"
	scheduleService "github.com/escalator-hq/escalator-backend-go/internal/service/schedule"
	timebankService "github.com/escalator-hq/escalator-backend-go/internal/service/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/service/workrule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	timebankRepo := postgresql.NewTimebankRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	// Seed the CLT defaults for any missing settings key
	for _, st := range setting.Defaults() {
		if _, err := settingRepo.Get(context.Background(), st.Key); err != nil {
			if _, err := settingRepo.Upsert(context.Background(), st); err != nil {
				fmt.Println("Error seeding settings:", err)
				return
			}
		}
	}

	clk := clock.System()
	settings := setting.NewSettings(settingRepo)
	resolver := contractService.NewResolver(contractRepo)
	calculator := journey.NewCalculator(resolver, settings)
	validator := workrule.NewValidator(scheduleRepo, resolver, settings)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	contractSvc := contractService.NewContractService(contractRepo, employeeRepo, resolver)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo, resolver, db)
	timebankSvc := timebankService.NewTimebankService(
		timebankRepo, punchRepo, calculator, resolver, settings, db, clk,
	)
	punchSvc := punchService.NewPunchService(
		punchRepo, scheduleRepo, employeeRepo, timebankSvc, calculator, db,
	)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		timebankJobs := cron.NewTimebankJobs(timebankSvc, clk, cfg.Cron.SweepPeriod)
		timebankJobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	contractHandler := appHTTP.NewContractHandler(contractSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc, validator)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	timebankHandler := appHTTP.NewTimebankHandler(timebankSvc)
	settingHandler := appHTTP.NewSettingHandler(settingRepo)

	router := appHTTP.NewRouter(
		employeeHandler,
		contractHandler,
		scheduleHandler,
		punchHandler,
		timebankHandler,
		settingHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
