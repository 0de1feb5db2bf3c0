package smolv

// OpData is the static per-opcode descriptor shared by the encoder and the
// decoder. It is immutable, and both sides of the codec must consult the
// exact same table or the decoded stream is undefined. Callers must check
// an opcode against NumOps before indexing OpTable with it — a malformed
// stream can claim any opcode value, including ones past the table's end.
type OpData struct {
	HasResult       bool  // instruction produces a result-id
	HasType         bool  // instruction carries a type-id before the result-id
	DeltaFromResult uint8 // operand words following type+result written as deltas from result
	VarRest         bool  // remaining operand words after the delta group are varint-encoded
}

// MaxOpcode is the highest numeric SPIR-V opcode this table describes
// (SpvOpGroupNonUniformQuadSwap).
const MaxOpcode = 366

// NumOps is the number of rows in OpTable.
const NumOps = MaxOpcode + 1

// OpTable is the canonical op metadata table, indexed by numeric opcode.
// Unassigned/reserved opcodes carry a conservative all-present placeholder
// row so an indexing mistake fails loudly on a real module rather than
// silently truncating output.
var OpTable = [NumOps]OpData{
	0:   {false, false, 0, false}, // Nop
	1:   {true, true, 0, false},   // Undef
	2:   {false, false, 0, false}, // SourceContinued
	3:   {false, false, 0, true},  // Source
	4:   {false, false, 0, false}, // SourceExtension
	5:   {false, false, 0, false}, // Name
	6:   {false, false, 0, false}, // MemberName
	7:   {false, false, 0, false}, // String
	8:   {false, false, 0, true},  // Line
	9:   {true, true, 0, false},   // #9 (reserved)
	10:  {false, false, 0, false}, // Extension
	11:  {true, false, 0, false},  // ExtInstImport
	12:  {true, true, 0, true},    // ExtInst
	13:  {true, true, 2, true},    // VectorShuffleCompact (synthetic, not real SPIR-V)
	14:  {false, false, 0, true},  // MemoryModel
	15:  {false, false, 0, true},  // EntryPoint
	16:  {false, false, 0, true},  // ExecutionMode
	17:  {false, false, 0, true},  // Capability
	18:  {true, true, 0, false},   // #18 (reserved)
	19:  {true, false, 0, true},   // TypeVoid
	20:  {true, false, 0, true},   // TypeBool
	21:  {true, false, 0, true},   // TypeInt
	22:  {true, false, 0, true},   // TypeFloat
	23:  {true, false, 0, true},   // TypeVector
	24:  {true, false, 0, true},   // TypeMatrix
	25:  {true, false, 0, true},   // TypeImage
	26:  {true, false, 0, true},   // TypeSampler
	27:  {true, false, 0, true},   // TypeSampledImage
	28:  {true, false, 0, true},   // TypeArray
	29:  {true, false, 0, true},   // TypeRuntimeArray
	30:  {true, false, 0, true},   // TypeStruct
	31:  {true, false, 0, true},   // TypeOpaque
	32:  {true, false, 0, true},   // TypePointer
	33:  {true, false, 0, true},   // TypeFunction
	34:  {true, false, 0, true},   // TypeEvent
	35:  {true, false, 0, true},   // TypeDeviceEvent
	36:  {true, false, 0, true},   // TypeReserveId
	37:  {true, false, 0, true},   // TypeQueue
	38:  {true, false, 0, true},   // TypePipe
	39:  {false, false, 0, true},  // TypeForwardPointer
	40:  {true, true, 0, false},   // #40 (reserved)
	41:  {true, true, 0, false},   // ConstantTrue
	42:  {true, true, 0, false},   // ConstantFalse
	43:  {true, true, 0, false},   // Constant
	44:  {true, true, 9, false},   // ConstantComposite
	45:  {true, true, 0, true},    // ConstantSampler
	46:  {true, true, 0, false},   // ConstantNull
	47:  {true, true, 0, false},   // #47 (reserved)
	48:  {true, true, 0, false},   // SpecConstantTrue
	49:  {true, true, 0, false},   // SpecConstantFalse
	50:  {true, true, 0, false},   // SpecConstant
	51:  {true, true, 9, false},   // SpecConstantComposite
	52:  {true, true, 0, false},   // SpecConstantOp
	53:  {true, true, 0, false},   // #53 (reserved)
	54:  {true, true, 0, true},    // Function
	55:  {true, true, 0, false},   // FunctionParameter
	56:  {false, false, 0, false}, // FunctionEnd
	57:  {true, true, 9, false},   // FunctionCall
	58:  {true, true, 0, false},   // #58 (reserved)
	59:  {true, true, 0, true},    // Variable
	60:  {true, true, 0, false},   // ImageTexelPointer
	61:  {true, true, 1, true},    // Load
	62:  {false, false, 2, true},  // Store
	63:  {false, false, 0, false}, // CopyMemory
	64:  {false, false, 0, false}, // CopyMemorySized
	65:  {true, true, 0, true},    // AccessChain
	66:  {true, true, 0, false},   // InBoundsAccessChain
	67:  {true, true, 0, false},   // PtrAccessChain
	68:  {true, true, 0, false},   // ArrayLength
	69:  {true, true, 0, false},   // GenericPtrMemSemantics
	70:  {true, true, 0, false},   // InBoundsPtrAccessChain
	71:  {false, false, 0, true},  // Decorate
	72:  {false, false, 0, true},  // MemberDecorate
	73:  {true, false, 0, false},  // DecorationGroup
	74:  {false, false, 0, false}, // GroupDecorate
	75:  {false, false, 0, false}, // GroupMemberDecorate
	76:  {true, true, 0, false},   // #76 (reserved)
	77:  {true, true, 1, true},    // VectorExtractDynamic
	78:  {true, true, 2, true},    // VectorInsertDynamic
	79:  {true, true, 2, true},    // VectorShuffle
	80:  {true, true, 9, false},   // CompositeConstruct
	81:  {true, true, 1, true},    // CompositeExtract
	82:  {true, true, 2, true},    // CompositeInsert
	83:  {true, true, 1, false},   // CopyObject
	84:  {true, true, 0, false},   // Transpose
	85:  {true, true, 0, false},   // #85 (reserved)
	86:  {true, true, 0, false},   // SampledImage
	87:  {true, true, 2, true},    // ImageSampleImplicitLod
	88:  {true, true, 2, true},    // ImageSampleExplicitLod
	89:  {true, true, 3, true},    // ImageSampleDrefImplicitLod
	90:  {true, true, 3, true},    // ImageSampleDrefExplicitLod
	91:  {true, true, 2, true},    // ImageSampleProjImplicitLod
	92:  {true, true, 2, true},    // ImageSampleProjExplicitLod
	93:  {true, true, 3, true},    // ImageSampleProjDrefImplicitLod
	94:  {true, true, 3, true},    // ImageSampleProjDrefExplicitLod
	95:  {true, true, 2, true},    // ImageFetch
	96:  {true, true, 3, true},    // ImageGather
	97:  {true, true, 3, true},    // ImageDrefGather
	98:  {true, true, 2, true},    // ImageRead
	99:  {false, false, 3, true},  // ImageWrite
	100: {true, true, 1, false},   // Image
	101: {true, true, 1, false},   // ImageQueryFormat
	102: {true, true, 1, false},   // ImageQueryOrder
	103: {true, true, 2, false},   // ImageQuerySizeLod
	104: {true, true, 1, false},   // ImageQuerySize
	105: {true, true, 2, false},   // ImageQueryLod
	106: {true, true, 1, false},   // ImageQueryLevels
	107: {true, true, 1, false},   // ImageQuerySamples
	108: {true, true, 0, false},   // #108 (reserved)
	109: {true, true, 1, false},   // ConvertFToU
	110: {true, true, 1, false},   // ConvertFToS
	111: {true, true, 1, false},   // ConvertSToF
	112: {true, true, 1, false},   // ConvertUToF
	113: {true, true, 1, false},   // UConvert
	114: {true, true, 1, false},   // SConvert
	115: {true, true, 1, false},   // FConvert
	116: {true, true, 1, false},   // QuantizeToF16
	117: {true, true, 1, false},   // ConvertPtrToU
	118: {true, true, 1, false},   // SatConvertSToU
	119: {true, true, 1, false},   // SatConvertUToS
	120: {true, true, 1, false},   // ConvertUToPtr
	121: {true, true, 1, false},   // PtrCastToGeneric
	122: {true, true, 1, false},   // GenericCastToPtr
	123: {true, true, 1, true},    // GenericCastToPtrExplicit
	124: {true, true, 1, false},   // Bitcast
	125: {true, true, 0, false},   // #125 (reserved)
	126: {true, true, 1, false},   // SNegate
	127: {true, true, 1, false},   // FNegate
	128: {true, true, 2, false},   // IAdd
	129: {true, true, 2, false},   // FAdd
	130: {true, true, 2, false},   // ISub
	131: {true, true, 2, false},   // FSub
	132: {true, true, 2, false},   // IMul
	133: {true, true, 2, false},   // FMul
	134: {true, true, 2, false},   // UDiv
	135: {true, true, 2, false},   // SDiv
	136: {true, true, 2, false},   // FDiv
	137: {true, true, 2, false},   // UMod
	138: {true, true, 2, false},   // SRem
	139: {true, true, 2, false},   // SMod
	140: {true, true, 2, false},   // FRem
	141: {true, true, 2, false},   // FMod
	142: {true, true, 2, false},   // VectorTimesScalar
	143: {true, true, 2, false},   // MatrixTimesScalar
	144: {true, true, 2, false},   // VectorTimesMatrix
	145: {true, true, 2, false},   // MatrixTimesVector
	146: {true, true, 2, false},   // MatrixTimesMatrix
	147: {true, true, 2, false},   // OuterProduct
	148: {true, true, 2, false},   // Dot
	149: {true, true, 2, false},   // IAddCarry
	150: {true, true, 2, false},   // ISubBorrow
	151: {true, true, 2, false},   // UMulExtended
	152: {true, true, 2, false},   // SMulExtended
	153: {true, true, 0, false},   // #153 (reserved)
	154: {true, true, 1, false},   // Any
	155: {true, true, 1, false},   // All
	156: {true, true, 1, false},   // IsNan
	157: {true, true, 1, false},   // IsInf
	158: {true, true, 1, false},   // IsFinite
	159: {true, true, 1, false},   // IsNormal
	160: {true, true, 1, false},   // SignBitSet
	161: {true, true, 2, false},   // LessOrGreater
	162: {true, true, 2, false},   // Ordered
	163: {true, true, 2, false},   // Unordered
	164: {true, true, 2, false},   // LogicalEqual
	165: {true, true, 2, false},   // LogicalNotEqual
	166: {true, true, 2, false},   // LogicalOr
	167: {true, true, 2, false},   // LogicalAnd
	168: {true, true, 1, false},   // LogicalNot
	169: {true, true, 3, false},   // Select
	170: {true, true, 2, false},   // IEqual
	171: {true, true, 2, false},   // INotEqual
	172: {true, true, 2, false},   // UGreaterThan
	173: {true, true, 2, false},   // SGreaterThan
	174: {true, true, 2, false},   // UGreaterThanEqual
	175: {true, true, 2, false},   // SGreaterThanEqual
	176: {true, true, 2, false},   // ULessThan
	177: {true, true, 2, false},   // SLessThan
	178: {true, true, 2, false},   // ULessThanEqual
	179: {true, true, 2, false},   // SLessThanEqual
	180: {true, true, 2, false},   // FOrdEqual
	181: {true, true, 2, false},   // FUnordEqual
	182: {true, true, 2, false},   // FOrdNotEqual
	183: {true, true, 2, false},   // FUnordNotEqual
	184: {true, true, 2, false},   // FOrdLessThan
	185: {true, true, 2, false},   // FUnordLessThan
	186: {true, true, 2, false},   // FOrdGreaterThan
	187: {true, true, 2, false},   // FUnordGreaterThan
	188: {true, true, 2, false},   // FOrdLessThanEqual
	189: {true, true, 2, false},   // FUnordLessThanEqual
	190: {true, true, 2, false},   // FOrdGreaterThanEqual
	191: {true, true, 2, false},   // FUnordGreaterThanEqual
	192: {true, true, 0, false},   // #192 (reserved)
	193: {true, true, 0, false},   // #193 (reserved)
	194: {true, true, 2, false},   // ShiftRightLogical
	195: {true, true, 2, false},   // ShiftRightArithmetic
	196: {true, true, 2, false},   // ShiftLeftLogical
	197: {true, true, 2, false},   // BitwiseOr
	198: {true, true, 2, false},   // BitwiseXor
	199: {true, true, 2, false},   // BitwiseAnd
	200: {true, true, 1, false},   // Not
	201: {true, true, 4, false},   // BitFieldInsert
	202: {true, true, 3, false},   // BitFieldSExtract
	203: {true, true, 3, false},   // BitFieldUExtract
	204: {true, true, 1, false},   // BitReverse
	205: {true, true, 1, false},   // BitCount
	206: {true, true, 0, false},   // #206 (reserved)
	207: {true, true, 0, false},   // DPdx
	208: {true, true, 0, false},   // DPdy
	209: {true, true, 0, false},   // Fwidth
	210: {true, true, 0, false},   // DPdxFine
	211: {true, true, 0, false},   // DPdyFine
	212: {true, true, 0, false},   // FwidthFine
	213: {true, true, 0, false},   // DPdxCoarse
	214: {true, true, 0, false},   // DPdyCoarse
	215: {true, true, 0, false},   // FwidthCoarse
	216: {true, true, 0, false},   // #216 (reserved)
	217: {true, true, 0, false},   // #217 (reserved)
	218: {false, false, 0, false}, // EmitVertex
	219: {false, false, 0, false}, // EndPrimitive
	220: {false, false, 0, false}, // EmitStreamVertex
	221: {false, false, 0, false}, // EndStreamPrimitive
	222: {true, true, 0, false},   // #222 (reserved)
	223: {true, true, 0, false},   // #223 (reserved)
	224: {false, false, 3, false}, // ControlBarrier
	225: {false, false, 2, false}, // MemoryBarrier
	226: {true, true, 0, false},   // #226 (reserved)
	227: {true, true, 0, false},   // AtomicLoad
	228: {false, false, 0, false}, // AtomicStore
	229: {true, true, 0, false},   // AtomicExchange
	230: {true, true, 0, false},   // AtomicCompareExchange
	231: {true, true, 0, false},   // AtomicCompareExchangeWeak
	232: {true, true, 0, false},   // AtomicIIncrement
	233: {true, true, 0, false},   // AtomicIDecrement
	234: {true, true, 0, false},   // AtomicIAdd
	235: {true, true, 0, false},   // AtomicISub
	236: {true, true, 0, false},   // AtomicSMin
	237: {true, true, 0, false},   // AtomicUMin
	238: {true, true, 0, false},   // AtomicSMax
	239: {true, true, 0, false},   // AtomicUMax
	240: {true, true, 0, false},   // AtomicAnd
	241: {true, true, 0, false},   // AtomicOr
	242: {true, true, 0, false},   // AtomicXor
	243: {true, true, 0, false},   // #243 (reserved)
	244: {true, true, 0, false},   // #244 (reserved)
	245: {true, true, 0, false},   // Phi
	246: {false, false, 2, true},  // LoopMerge
	247: {false, false, 1, true},  // SelectionMerge
	248: {true, false, 0, false},  // Label
	249: {false, false, 1, false}, // Branch
	250: {false, false, 3, true},  // BranchConditional
	251: {false, false, 0, false}, // Switch
	252: {false, false, 0, false}, // Kill
	253: {false, false, 0, false}, // Return
	254: {false, false, 0, false}, // ReturnValue
	255: {false, false, 0, false}, // Unreachable
	256: {false, false, 0, false}, // LifetimeStart
	257: {false, false, 0, false}, // LifetimeStop
	258: {true, true, 0, false},   // #258 (reserved)
	259: {true, true, 0, false},   // GroupAsyncCopy
	260: {false, false, 0, false}, // GroupWaitEvents
	261: {true, true, 0, false},   // GroupAll
	262: {true, true, 0, false},   // GroupAny
	263: {true, true, 0, false},   // GroupBroadcast
	264: {true, true, 0, false},   // GroupIAdd
	265: {true, true, 0, false},   // GroupFAdd
	266: {true, true, 0, false},   // GroupFMin
	267: {true, true, 0, false},   // GroupUMin
	268: {true, true, 0, false},   // GroupSMin
	269: {true, true, 0, false},   // GroupFMax
	270: {true, true, 0, false},   // GroupUMax
	271: {true, true, 0, false},   // GroupSMax
	272: {true, true, 0, false},   // #272 (reserved)
	273: {true, true, 0, false},   // #273 (reserved)
	274: {true, true, 0, false},   // ReadPipe
	275: {true, true, 0, false},   // WritePipe
	276: {true, true, 0, false},   // ReservedReadPipe
	277: {true, true, 0, false},   // ReservedWritePipe
	278: {true, true, 0, false},   // ReserveReadPipePackets
	279: {true, true, 0, false},   // ReserveWritePipePackets
	280: {false, false, 0, false}, // CommitReadPipe
	281: {false, false, 0, false}, // CommitWritePipe
	282: {true, true, 0, false},   // IsValidReserveId
	283: {true, true, 0, false},   // GetNumPipePackets
	284: {true, true, 0, false},   // GetMaxPipePackets
	285: {true, true, 0, false},   // GroupReserveReadPipePackets
	286: {true, true, 0, false},   // GroupReserveWritePipePackets
	287: {false, false, 0, false}, // GroupCommitReadPipe
	288: {false, false, 0, false}, // GroupCommitWritePipe
	289: {true, true, 0, false},   // #289 (reserved)
	290: {true, true, 0, false},   // #290 (reserved)
	291: {true, true, 0, false},   // EnqueueMarker
	292: {true, true, 0, false},   // EnqueueKernel
	293: {true, true, 0, false},   // GetKernelNDrangeSubGroupCount
	294: {true, true, 0, false},   // GetKernelNDrangeMaxSubGroupSize
	295: {true, true, 0, false},   // GetKernelWorkGroupSize
	296: {true, true, 0, false},   // GetKernelPreferredWorkGroupSizeMultiple
	297: {false, false, 0, false}, // RetainEvent
	298: {false, false, 0, false}, // ReleaseEvent
	299: {true, true, 0, false},   // CreateUserEvent
	300: {true, true, 0, false},   // IsValidEvent
	301: {false, false, 0, false}, // SetUserEventStatus
	302: {false, false, 0, false}, // CaptureEventProfilingInfo
	303: {true, true, 0, false},   // GetDefaultQueue
	304: {true, true, 0, false},   // BuildNDRange
	305: {true, true, 2, true},    // ImageSparseSampleImplicitLod
	306: {true, true, 2, true},    // ImageSparseSampleExplicitLod
	307: {true, true, 3, true},    // ImageSparseSampleDrefImplicitLod
	308: {true, true, 3, true},    // ImageSparseSampleDrefExplicitLod
	309: {true, true, 2, true},    // ImageSparseSampleProjImplicitLod
	310: {true, true, 2, true},    // ImageSparseSampleProjExplicitLod
	311: {true, true, 3, true},    // ImageSparseSampleProjDrefImplicitLod
	312: {true, true, 3, true},    // ImageSparseSampleProjDrefExplicitLod
	313: {true, true, 2, true},    // ImageSparseFetch
	314: {true, true, 3, true},    // ImageSparseGather
	315: {true, true, 3, true},    // ImageSparseDrefGather
	316: {true, true, 1, false},   // ImageSparseTexelsResident
	317: {false, false, 0, false}, // NoLine
	318: {true, true, 0, false},   // AtomicFlagTestAndSet
	319: {false, false, 0, false}, // AtomicFlagClear
	320: {true, true, 0, false},   // ImageSparseRead
	321: {true, true, 0, false},   // SizeOf
	322: {true, true, 0, false},   // TypePipeStorage
	323: {true, true, 0, false},   // ConstantPipeStorage
	324: {true, true, 0, false},   // CreatePipeFromPipeStorage
	325: {true, true, 0, false},   // GetKernelLocalSizeForSubgroupCount
	326: {true, true, 0, false},   // GetKernelMaxNumSubgroups
	327: {true, true, 0, false},   // TypeNamedBarrier
	328: {true, true, 0, true},    // NamedBarrierInitialize
	329: {false, false, 2, true},  // MemoryNamedBarrier
	330: {true, true, 0, false},   // ModuleProcessed
	331: {false, false, 0, true},  // ExecutionModeId
	332: {false, false, 0, true},  // DecorateId
	333: {true, true, 1, true},    // GroupNonUniformElect
	334: {true, true, 1, true},    // GroupNonUniformAll
	335: {true, true, 1, true},    // GroupNonUniformAny
	336: {true, true, 1, true},    // GroupNonUniformAllEqual
	337: {true, true, 1, true},    // GroupNonUniformBroadcast
	338: {true, true, 1, true},    // GroupNonUniformBroadcastFirst
	339: {true, true, 1, true},    // GroupNonUniformBallot
	340: {true, true, 1, true},    // GroupNonUniformInverseBallot
	341: {true, true, 1, true},    // GroupNonUniformBallotBitExtract
	342: {true, true, 1, true},    // GroupNonUniformBallotBitCount
	343: {true, true, 1, true},    // GroupNonUniformBallotFindLSB
	344: {true, true, 1, true},    // GroupNonUniformBallotFindMSB
	345: {true, true, 1, true},    // GroupNonUniformShuffle
	346: {true, true, 1, true},    // GroupNonUniformShuffleXor
	347: {true, true, 1, true},    // GroupNonUniformShuffleUp
	348: {true, true, 1, true},    // GroupNonUniformShuffleDown
	349: {true, true, 1, true},    // GroupNonUniformIAdd
	350: {true, true, 1, true},    // GroupNonUniformFAdd
	351: {true, true, 1, true},    // GroupNonUniformIMul
	352: {true, true, 1, true},    // GroupNonUniformFMul
	353: {true, true, 1, true},    // GroupNonUniformSMin
	354: {true, true, 1, true},    // GroupNonUniformUMin
	355: {true, true, 1, true},    // GroupNonUniformFMin
	356: {true, true, 1, true},    // GroupNonUniformSMax
	357: {true, true, 1, true},    // GroupNonUniformUMax
	358: {true, true, 1, true},    // GroupNonUniformFMax
	359: {true, true, 1, true},    // GroupNonUniformBitwiseAnd
	360: {true, true, 1, true},    // GroupNonUniformBitwiseOr
	361: {true, true, 1, true},    // GroupNonUniformBitwiseXor
	362: {true, true, 1, true},    // GroupNonUniformLogicalAnd
	363: {true, true, 1, true},    // GroupNonUniformLogicalOr
	364: {true, true, 1, true},    // GroupNonUniformLogicalXor
	365: {true, true, 1, true},    // GroupNonUniformQuadBroadcast
	366: {true, true, 1, true},    // GroupNonUniformQuadSwap
}

// DecorationExtraOps returns the number of known extra operand words that
// follow a MemberDecorate's decoration id, or -1 if the count is unknown
// and must be encoded explicitly.
func DecorationExtraOps(dec uint32) int {
	if dec == 0 || (dec >= 2 && dec <= 5) {
		return 0
	}
	if dec >= 29 && dec <= 37 {
		return 1
	}
	return -1
}
