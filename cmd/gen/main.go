package main

import (
	"guildhall/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.PlayerModel{},
		model.RefreshTokenModel{},
		model.RetailerModel{},
		model.PlayerRetailerModel{},
		model.CampaignModel{},
		model.CampaignPlayerModel{},
		model.TournamentModel{},
		model.TournamentEntryModel{},
		model.GameSystemModel{},
		model.PlayerGameAccountModel{},
		model.ConventionModel{},
		model.BlogModel{},
		model.PlayerNotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
