package domain

import (
	"time"
)

// CampaignStatus é o status efetivo da campanha reportado pela loja de métricas
type CampaignStatus string

const (
	CampaignStatusActive  CampaignStatus = "active"
	CampaignStatusPaused  CampaignStatus = "paused"
	CampaignStatusDeleted CampaignStatus = "deleted"
	CampaignStatusUnknown CampaignStatus = "unknown"
)

// IsActive indica se a campanha contribui para análises sem include_inactive
func (s CampaignStatus) IsActive() bool {
	return s == CampaignStatusActive || s == CampaignStatusUnknown
}

// AdDailyRow é uma linha bruta de métricas diárias por anúncio, pré-agregada
// por (campaign_id, adset_id, ad_id, date) na loja de métricas
type AdDailyRow struct {
	CampaignID       string         `json:"campaign_id"`
	CampaignName     string         `json:"campaign_name"`
	CampaignStatus   CampaignStatus `json:"campaign_status"`
	AdsetID          string         `json:"adset_id"`
	AdsetName        string         `json:"adset_name"`
	AdID             string         `json:"ad_id"`
	AdName           string         `json:"ad_name"`
	Date             time.Time      `json:"date"`
	Impressions      int            `json:"impressions"`
	Reach            int            `json:"reach"`
	InlineLinkClicks int            `json:"inline_link_clicks"`
	OutboundClicks   int            `json:"outbound_clicks"`
	Clicks           int            `json:"clicks"`
	Conversions      int            `json:"conversions"`
	Spend            float64        `json:"spend"`
}

// AdDailyEntry é uma linha diária com as métricas derivadas já projetadas.
// LinkCTR é sempre o CTR de cliques no link, nunca o CTR de cliques totais.
type AdDailyEntry struct {
	Date          string  `json:"date"`
	Impressions   int     `json:"impressions"`
	Reach         int     `json:"reach"`
	LinkClicks    int     `json:"link_clicks"`
	Conversions   int     `json:"conversions"`
	Spend         float64 `json:"spend"`
	LinkCTR       float64 `json:"link_ctr"`
	CVR           float64 `json:"cvr"`
	Frequency     float64 `json:"frequency"`
	NewReachRatio float64 `json:"new_reach_ratio"`
}

// AnalysisFilters delimita a janela de análise (datas inclusivas)
type AnalysisFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AnalysisOptions são as opções do chamador para uma análise
type AnalysisOptions struct {
	IncludeInactive bool
}
