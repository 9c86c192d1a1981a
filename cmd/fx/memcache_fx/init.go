package memcache_fx

import (
	"go.uber.org/fx"

	mem "redeemedstrength/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokenStore,
	providePreviewTierStore)

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func providePreviewTierStore() mem.PreviewTierStore {
	return mem.NewPreviewTiers()
}
