// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ItemType is the numeric discriminator the CLI places in the `type` field
// of every vault item record.
type ItemType int

const (
	ItemTypeLogin    ItemType = 1
	ItemTypeNote     ItemType = 2
	ItemTypeCard     ItemType = 3
	ItemTypeIdentity ItemType = 4
)

// ErrUnknownItemType is returned by [DecodeItem] for records whose type
// discriminator has no modeled variant. Callers are expected to skip such
// records rather than fail the whole listing.
var ErrUnknownItemType = errors.New("unknown vault item type")

// Item is one decoded vault entry. Concrete variants are [LoginItem],
// [NoteItem] and [CardItem]; the variant is chosen by the record's type
// discriminator in [DecodeItem].
type Item interface {
	// Type returns the discriminator of the concrete variant.
	Type() ItemType

	// Equal reports structural equality with another item. Identity fields
	// (id, folder id) are excluded so that re-imported copies of the same
	// entry still compare equal.
	Equal(other Item) bool
}

// ItemBase carries the attributes common to every vault item variant.
type ItemBase struct {
	ID       string `json:"id"`
	FolderID string `json:"folderId"`
	Name     string `json:"name"`
	Notes    string `json:"notes"`
}

func (b ItemBase) equalBase(o ItemBase) bool {
	return b.Name == o.Name && b.Notes == o.Notes
}

// LoginItem is a credential entry: username, password and an optional
// time-based one-time code seed.
type LoginItem struct {
	ItemBase
	Username string `json:"username"`
	Password string `json:"password"`
	TOTP     string `json:"totp"`
}

func (i LoginItem) Type() ItemType { return ItemTypeLogin }

func (i LoginItem) Equal(other Item) bool {
	o, ok := other.(LoginItem)
	if !ok {
		return false
	}
	return i.equalBase(o.ItemBase) &&
		i.Username == o.Username &&
		i.Password == o.Password &&
		i.TOTP == o.TOTP
}

// NoteItem is a secure note; it has no fields beyond the common ones.
type NoteItem struct {
	ItemBase
}

func (i NoteItem) Type() ItemType { return ItemTypeNote }

func (i NoteItem) Equal(other Item) bool {
	o, ok := other.(NoteItem)
	if !ok {
		return false
	}
	return i.equalBase(o.ItemBase)
}

// CardItem is a payment card entry.
type CardItem struct {
	ItemBase
	CardholderName string `json:"cardholderName"`
	Brand          string `json:"brand"`
	Number         string `json:"number"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	Code           string `json:"code"`
}

func (i CardItem) Type() ItemType { return ItemTypeCard }

func (i CardItem) Equal(other Item) bool {
	o, ok := other.(CardItem)
	if !ok {
		return false
	}
	return i.equalBase(o.ItemBase) &&
		i.CardholderName == o.CardholderName &&
		i.Brand == o.Brand &&
		i.Number == o.Number &&
		i.ExpMonth == o.ExpMonth &&
		i.ExpYear == o.ExpYear &&
		i.Code == o.Code
}

// rawItem mirrors the CLI's item record: common fields at the top level and
// variant payloads nested under `login` / `card`.
type rawItem struct {
	ItemBase
	ItemType ItemType  `json:"type"`
	Login    *LoginItem `json:"login"`
	Card     *CardItem  `json:"card"`
}

// DecodeItem decodes a single item record from `bw list items` into the
// variant selected by its type discriminator. Records of an unmodeled type
// (identities, future additions) return [ErrUnknownItemType] wrapped with
// the offending discriminator value.
func DecodeItem(data []byte) (Item, error) {
	var raw rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode vault item: %w", err)
	}

	switch raw.ItemType {
	case ItemTypeLogin:
		item := LoginItem{ItemBase: raw.ItemBase}
		if raw.Login != nil {
			item.Username = raw.Login.Username
			item.Password = raw.Login.Password
			item.TOTP = raw.Login.TOTP
		}
		return item, nil
	case ItemTypeNote:
		return NoteItem{ItemBase: raw.ItemBase}, nil
	case ItemTypeCard:
		item := CardItem{ItemBase: raw.ItemBase}
		if raw.Card != nil {
			card := *raw.Card
			card.ItemBase = raw.ItemBase
			item = card
		}
		return item, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownItemType, raw.ItemType)
	}
}
