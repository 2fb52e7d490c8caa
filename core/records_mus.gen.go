// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapcTpqcavlZASPlt7oPLovkgΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	slicekpDUbGMi2BXBAxSNnMMqNAΞΞ = ord.NewSliceSer[Insight](InsightMUS)
	slicexw90Aep4H9vwOT1QΣ25IGwΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var AssetMUS = assetMUS{}

type assetMUS struct{}

func (s assetMUS) Marshal(v Asset, bs []byte) (n int) {
	n = ord.String.Marshal(v.URL, bs)
	n += ord.String.Marshal(v.FilePath, bs[n:])
	return n + ord.String.Marshal(v.Kind, bs[n:])
}

func (s assetMUS) Unmarshal(bs []byte) (v Asset, n int, err error) {
	v.URL, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FilePath, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s assetMUS) Size(v Asset) (size int) {
	size = ord.String.Size(v.URL)
	size += ord.String.Size(v.FilePath)
	return size + ord.String.Size(v.Kind)
}

func (s assetMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var InsightMUS = insightMUS{}

type insightMUS struct{}

func (s insightMUS) Marshal(v Insight, bs []byte) (n int) {
	n = ord.String.Marshal(v.Kind, bs)
	return n + ord.String.Marshal(v.Content, bs[n:])
}

func (s insightMUS) Unmarshal(bs []byte) (v Insight, n int, err error) {
	v.Kind, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s insightMUS) Size(v Insight) (size int) {
	size = ord.String.Size(v.Kind)
	return size + ord.String.Size(v.Content)
}

func (s insightMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var SourceRecordMUS = sourceRecordMUS{}

type sourceRecordMUS struct{}

func (s sourceRecordMUS) Marshal(v SourceRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.FullText, bs[n:])
	n += AssetMUS.Marshal(v.Asset, bs[n:])
	n += slicekpDUbGMi2BXBAxSNnMMqNAΞΞ.Marshal(v.Insights, bs[n:])
	n += slicexw90Aep4H9vwOT1QΣ25IGwΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
	return n + mapcTpqcavlZASPlt7oPLovkgΞΞ.Marshal(v.Metadata, bs[n:])
}

func (s sourceRecordMUS) Unmarshal(bs []byte) (v SourceRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FullText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Asset, n1, err = AssetMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Insights, n1, err = slicekpDUbGMi2BXBAxSNnMMqNAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicexw90Aep4H9vwOT1QΣ25IGwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = mapcTpqcavlZASPlt7oPLovkgΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sourceRecordMUS) Size(v SourceRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.FullText)
	size += AssetMUS.Size(v.Asset)
	size += slicekpDUbGMi2BXBAxSNnMMqNAΞΞ.Size(v.Insights)
	size += slicexw90Aep4H9vwOT1QΣ25IGwΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	size += raw.TimeUnixMicro.Size(v.UpdatedAt)
	return size + mapcTpqcavlZASPlt7oPLovkgΞΞ.Size(v.Metadata)
}

func (s sourceRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = AssetMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekpDUbGMi2BXBAxSNnMMqNAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicexw90Aep4H9vwOT1QΣ25IGwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapcTpqcavlZASPlt7oPLovkgΞΞ.Skip(bs[n:])
	n += n1
	return
}

var CollectionMUS = collectionMUS{}

type collectionMUS struct{}

func (s collectionMUS) Marshal(v Collection, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s collectionMUS) Unmarshal(bs []byte) (v Collection, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s collectionMUS) Size(v Collection) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s collectionMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
