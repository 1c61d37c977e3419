package directory

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineKind
	}{
		{
			name: "document_title",
			line: "桃園市政府員工卡特約商店名單及優惠措施一覽表",
			want: LineHeader,
		},
		{
			name: "page_counter",
			line: "第 3 頁，共 12 頁",
			want: LineHeader,
		},
		{
			name: "page_counter_no_spaces",
			line: "第3頁，共12頁",
			want: LineHeader,
		},
		{
			name: "footnote",
			line: "備註：詳細優惠內容請洽各特約商店",
			want: LineHeader,
		},
		{
			name: "column_header_spaced",
			line: "編 號 分 類 店家名稱 聯絡電話 縣市 區域 地址 提供之優惠",
			want: LineHeader,
		},
		{
			name: "column_header_compact",
			line: "編號 分類 店家名稱 聯絡電話 縣市 區域 地址 提供之優惠",
			want: LineHeader,
		},
		{
			name: "entry_start",
			line: "12 餐 飲 麥味登 03-1234567 桃園市 中壇區 中山路100號 消費滿百折20元",
			want: LineEntryStart,
		},
		{
			name: "entry_start_three_digit_id",
			line: "207 購 物 全聯福利中心 桃園市 平鎮區 延平路二段99號 全館95折",
			want: LineEntryStart,
		},
		{
			name: "entry_start_wide_category",
			line: "3 休閒育樂 運動場 大魯閣棒壘球場 03-2222333 桃園市 中壢區 中原路88號 平日租場8折",
			want: LineEntryStart,
		},
		{
			name: "four_digit_id_is_not_entry",
			line: "1234 餐 飲 某店 桃園市 桃園區 某路1號 9折",
			want: LineContinuation,
		},
		{
			name: "wrapped_offer_text",
			line: "平日消費另贈飲料一杯",
			want: LineContinuation,
		},
		{
			name: "latin_token_after_id_is_not_entry",
			line: "12 cafe 飲 某店 桃園市",
			want: LineContinuation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
