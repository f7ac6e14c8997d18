package models

import "strings"

// Zodiac signs
const (
	ZodiacAries       = "aries"
	ZodiacTaurus      = "taurus"
	ZodiacGemini      = "gemini"
	ZodiacCancer      = "cancer"
	ZodiacLeo         = "leo"
	ZodiacVirgo       = "virgo"
	ZodiacLibra       = "libra"
	ZodiacScorpio     = "scorpio"
	ZodiacSagittarius = "sagittarius"
	ZodiacCapricorn   = "capricorn"
	ZodiacAquarius    = "aquarius"
	ZodiacPisces      = "pisces"
)

// zodiacCompatibility maps each sign to its four compatible signs. The table
// is fixed and part of the discovery contract.
var zodiacCompatibility = map[string][]string{
	ZodiacAries:       {ZodiacLeo, ZodiacSagittarius, ZodiacGemini, ZodiacAquarius},
	ZodiacTaurus:      {ZodiacVirgo, ZodiacCapricorn, ZodiacCancer, ZodiacPisces},
	ZodiacGemini:      {ZodiacLibra, ZodiacAquarius, ZodiacAries, ZodiacLeo},
	ZodiacCancer:      {ZodiacScorpio, ZodiacPisces, ZodiacTaurus, ZodiacVirgo},
	ZodiacLeo:         {ZodiacAries, ZodiacSagittarius, ZodiacGemini, ZodiacLibra},
	ZodiacVirgo:       {ZodiacTaurus, ZodiacCapricorn, ZodiacCancer, ZodiacScorpio},
	ZodiacLibra:       {ZodiacGemini, ZodiacAquarius, ZodiacLeo, ZodiacSagittarius},
	ZodiacScorpio:     {ZodiacCancer, ZodiacPisces, ZodiacVirgo, ZodiacCapricorn},
	ZodiacSagittarius: {ZodiacAries, ZodiacLeo, ZodiacLibra, ZodiacAquarius},
	ZodiacCapricorn:   {ZodiacTaurus, ZodiacVirgo, ZodiacScorpio, ZodiacPisces},
	ZodiacAquarius:    {ZodiacGemini, ZodiacLibra, ZodiacAries, ZodiacSagittarius},
	ZodiacPisces:      {ZodiacCancer, ZodiacScorpio, ZodiacTaurus, ZodiacCapricorn},
}

// CompatibleZodiacs returns the compatible signs for the given sign, or nil
// when the sign is unknown. Lookup is case-insensitive.
func CompatibleZodiacs(sign string) []string {
	return zodiacCompatibility[strings.ToLower(sign)]
}

// ZodiacCompatible reports whether candidate's sign is in the requester
// sign's compatible set.
func ZodiacCompatible(requesterSign, candidateSign string) bool {
	candidate := strings.ToLower(candidateSign)
	for _, s := range CompatibleZodiacs(requesterSign) {
		if s == candidate {
			return true
		}
	}
	return false
}
