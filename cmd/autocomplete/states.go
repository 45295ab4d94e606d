package main

import "github.com/johnconnor-sec/autocomplete-go/internal/types"

// US states by census region, offered when no suggestions are configured.
var usStates = []types.Suggestion{
	{Value: "Alabama", Abbr: "AL", Group: "South"},
	{Value: "Alaska", Abbr: "AK", Group: "West"},
	{Value: "Arizona", Abbr: "AZ", Group: "West"},
	{Value: "Arkansas", Abbr: "AR", Group: "South"},
	{Value: "California", Abbr: "CA", Group: "West"},
	{Value: "Colorado", Abbr: "CO", Group: "West"},
	{Value: "Connecticut", Abbr: "CT", Group: "Northeast"},
	{Value: "Delaware", Abbr: "DE", Group: "South"},
	{Value: "Florida", Abbr: "FL", Group: "South"},
	{Value: "Georgia", Abbr: "GA", Group: "South"},
	{Value: "Hawaii", Abbr: "HI", Group: "West"},
	{Value: "Idaho", Abbr: "ID", Group: "West"},
	{Value: "Illinois", Abbr: "IL", Group: "Midwest"},
	{Value: "Indiana", Abbr: "IN", Group: "Midwest"},
	{Value: "Iowa", Abbr: "IA", Group: "Midwest"},
	{Value: "Kansas", Abbr: "KS", Group: "Midwest"},
	{Value: "Kentucky", Abbr: "KY", Group: "South"},
	{Value: "Louisiana", Abbr: "LA", Group: "South"},
	{Value: "Maine", Abbr: "ME", Group: "Northeast"},
	{Value: "Maryland", Abbr: "MD", Group: "South"},
	{Value: "Massachusetts", Abbr: "MA", Group: "Northeast"},
	{Value: "Michigan", Abbr: "MI", Group: "Midwest"},
	{Value: "Minnesota", Abbr: "MN", Group: "Midwest"},
	{Value: "Mississippi", Abbr: "MS", Group: "South"},
	{Value: "Missouri", Abbr: "MO", Group: "Midwest"},
	{Value: "Montana", Abbr: "MT", Group: "West"},
	{Value: "Nebraska", Abbr: "NE", Group: "Midwest"},
	{Value: "Nevada", Abbr: "NV", Group: "West"},
	{Value: "New Hampshire", Abbr: "NH", Group: "Northeast"},
	{Value: "New Jersey", Abbr: "NJ", Group: "Northeast"},
	{Value: "New Mexico", Abbr: "NM", Group: "West"},
	{Value: "New York", Abbr: "NY", Group: "Northeast"},
	{Value: "North Carolina", Abbr: "NC", Group: "South"},
	{Value: "North Dakota", Abbr: "ND", Group: "Midwest"},
	{Value: "Ohio", Abbr: "OH", Group: "Midwest"},
	{Value: "Oklahoma", Abbr: "OK", Group: "South"},
	{Value: "Oregon", Abbr: "OR", Group: "West"},
	{Value: "Pennsylvania", Abbr: "PA", Group: "Northeast"},
	{Value: "Rhode Island", Abbr: "RI", Group: "Northeast"},
	{Value: "South Carolina", Abbr: "SC", Group: "South"},
	{Value: "South Dakota", Abbr: "SD", Group: "Midwest"},
	{Value: "Tennessee", Abbr: "TN", Group: "South"},
	{Value: "Texas", Abbr: "TX", Group: "South"},
	{Value: "Utah", Abbr: "UT", Group: "West"},
	{Value: "Vermont", Abbr: "VT", Group: "Northeast"},
	{Value: "Virginia", Abbr: "VA", Group: "South"},
	{Value: "Washington", Abbr: "WA", Group: "West"},
	{Value: "West Virginia", Abbr: "WV", Group: "South"},
	{Value: "Wisconsin", Abbr: "WI", Group: "Midwest"},
	{Value: "Wyoming", Abbr: "WY", Group: "West"},
}
