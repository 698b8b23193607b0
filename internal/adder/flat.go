package adder

// Flat sums all 128 operands in a single unrolled expression, the shape the
// compiler would produce if every halving helper of the other strategies were
// inlined away. It is the baseline the nested variants are measured against.
type Flat struct{}

// Name identifies the strategy in reports and metrics labels.
func (Flat) Name() string { return "flat" }

// Sum adds every operand in one expression.
func (Flat) Sum(v Vector) int64 {
	return v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6] + v[7] +
		v[8] + v[9] + v[10] + v[11] + v[12] + v[13] + v[14] + v[15] +
		v[16] + v[17] + v[18] + v[19] + v[20] + v[21] + v[22] + v[23] +
		v[24] + v[25] + v[26] + v[27] + v[28] + v[29] + v[30] + v[31] +
		v[32] + v[33] + v[34] + v[35] + v[36] + v[37] + v[38] + v[39] +
		v[40] + v[41] + v[42] + v[43] + v[44] + v[45] + v[46] + v[47] +
		v[48] + v[49] + v[50] + v[51] + v[52] + v[53] + v[54] + v[55] +
		v[56] + v[57] + v[58] + v[59] + v[60] + v[61] + v[62] + v[63] +
		v[64] + v[65] + v[66] + v[67] + v[68] + v[69] + v[70] + v[71] +
		v[72] + v[73] + v[74] + v[75] + v[76] + v[77] + v[78] + v[79] +
		v[80] + v[81] + v[82] + v[83] + v[84] + v[85] + v[86] + v[87] +
		v[88] + v[89] + v[90] + v[91] + v[92] + v[93] + v[94] + v[95] +
		v[96] + v[97] + v[98] + v[99] + v[100] + v[101] + v[102] + v[103] +
		v[104] + v[105] + v[106] + v[107] + v[108] + v[109] + v[110] + v[111] +
		v[112] + v[113] + v[114] + v[115] + v[116] + v[117] + v[118] + v[119] +
		v[120] + v[121] + v[122] + v[123] + v[124] + v[125] + v[126] + v[127]
}
